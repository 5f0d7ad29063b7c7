package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"cardapio/internal/config"
	"cardapio/internal/database"
	"cardapio/internal/handlers"
	"cardapio/internal/middleware"
	"cardapio/internal/settings"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("⚠️ order index warning: %v", err)
	}
	if err := database.EnsureStaffIndexes(db); err != nil {
		log.Printf("⚠️ staff index warning: %v", err)
	}

	store := settings.NewMongoStore(db)

	r := gin.Default()

	r.GET("/api/settings", handlers.GetSettings(store))
	r.GET("/api/menu", handlers.GetMenu(store))
	r.POST("/api/orders", handlers.CreateOrder(db))

	r.POST("/api/auth/login", handlers.StaffLogin(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	staff := r.Group("/api")
	staff.Use(middleware.StaffAuth(config.AppEnv.JWTSecret))
	{
		staff.PUT("/settings", handlers.UpdateSettings(store))

		staff.POST("/settings/categories", handlers.CreateCategory(store))
		staff.PUT("/settings/categories/:id", handlers.UpdateCategory(store))
		staff.DELETE("/settings/categories/:id", handlers.DeleteCategory(store))

		staff.POST("/settings/items", handlers.CreateMenuItem(store))
		staff.PUT("/settings/items/:id", handlers.UpdateMenuItem(store))
		staff.DELETE("/settings/items/:id", handlers.DeleteMenuItem(store))

		staff.GET("/orders", handlers.GetOrders(db))
		staff.DELETE("/orders", handlers.DeleteOrder(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
