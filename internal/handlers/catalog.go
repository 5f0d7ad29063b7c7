package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cardapio/internal/menu"
	"cardapio/internal/models"
	"cardapio/internal/settings"
)

/* =========================
   REQUEST DTOs
========================= */

type categoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
}

type menuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  string  `json:"categoryId" binding:"required"`
	IsAvailable *bool   `json:"isAvailable"`
	Order       int     `json:"order"`
}

func (r menuItemRequest) toModel(id string) models.MenuItem {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return models.MenuItem{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		IsAvailable: available,
		Order:       r.Order,
	}
}

// mutateCatalog runs one load-mutate-save cycle against the settings
// aggregate. The mutation returns the value echoed back to the caller.
func mutateCatalog(c *gin.Context, store settings.Store, route string, mutate func(*models.Settings) (interface{}, error)) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	current, err := store.Load(ctx)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, route, "db error")
		return
	}

	result, err := mutate(&current)
	if errors.Is(err, menu.ErrCategoryNotFound) || errors.Is(err, menu.ErrItemNotFound) {
		respondWithError(c, http.StatusNotFound, route, err.Error())
		return
	}
	if err != nil {
		respondWithError(c, http.StatusBadRequest, route, err.Error())
		return
	}

	if _, err := store.Save(ctx, current); err != nil {
		if errors.Is(err, settings.ErrVersionConflict) {
			respondWithError(c, http.StatusConflict, route, "settings changed concurrently, reload and retry")
			return
		}
		respondWithError(c, http.StatusInternalServerError, route, "db error")
		return
	}

	respondWithData(c, http.StatusOK, result)
}

/* =========================
   CATEGORIES
========================= */

// CreateCategory adds a category to the catalog. POST /api/settings/categories
func CreateCategory(store settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/settings/categories"
		defer handlePanic(c, route)

		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		mutateCatalog(c, store, route, func(s *models.Settings) (interface{}, error) {
			return menu.AddCategory(s, models.Category{Name: req.Name, Order: req.Order})
		})
	}
}

// UpdateCategory renames or reorders a category. PUT /api/settings/categories/:id
func UpdateCategory(store settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/settings/categories/:id"
		defer handlePanic(c, route)

		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		category := models.Category{ID: c.Param("id"), Name: req.Name, Order: req.Order}
		mutateCatalog(c, store, route, func(s *models.Settings) (interface{}, error) {
			return category, menu.UpdateCategory(s, category)
		})
	}
}

// DeleteCategory removes a category and, with it, every item that pointed
// at it. DELETE /api/settings/categories/:id
func DeleteCategory(store settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/settings/categories/:id"
		defer handlePanic(c, route)

		id := c.Param("id")
		mutateCatalog(c, store, route, func(s *models.Settings) (interface{}, error) {
			return gin.H{"id": id}, menu.DeleteCategory(s, id)
		})
	}
}

/* =========================
   MENU ITEMS
========================= */

// CreateMenuItem adds an item to the catalog. POST /api/settings/items
func CreateMenuItem(store settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/settings/items"
		defer handlePanic(c, route)

		var req menuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		mutateCatalog(c, store, route, func(s *models.Settings) (interface{}, error) {
			return menu.AddItem(s, req.toModel(""))
		})
	}
}

// UpdateMenuItem replaces an item, availability toggles included.
// PUT /api/settings/items/:id
func UpdateMenuItem(store settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/settings/items/:id"
		defer handlePanic(c, route)

		var req menuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		item := req.toModel(c.Param("id"))
		mutateCatalog(c, store, route, func(s *models.Settings) (interface{}, error) {
			return item, menu.UpdateItem(s, item)
		})
	}
}

// DeleteMenuItem removes an item. DELETE /api/settings/items/:id
func DeleteMenuItem(store settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/settings/items/:id"
		defer handlePanic(c, route)

		id := c.Param("id")
		mutateCatalog(c, store, route, func(s *models.Settings) (interface{}, error) {
			return gin.H{"id": id}, menu.DeleteItem(s, id)
		})
	}
}
