package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cardapio/internal/models"
)

// orderConfirmation is shown to the customer after checkout.
const orderConfirmation = "🎉 Pedido realizado com sucesso! Em breve ele será preparado com carinho pela equipe Pappardelle. Obrigado por escolher a gente! 🍕🥟"

/* =========================
   REQUEST DTOs
========================= */

type createOrderItemRequest struct {
	Nome       string  `json:"nome" binding:"required"`
	Quantidade int     `json:"quantidade" binding:"required"`
	Preco      float64 `json:"preco"`
	Observacao string  `json:"observacao"`
}

type createOrderClienteRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Telefone string `json:"telefone"`
}

type createOrderEnderecoRequest struct {
	Address       models.Address `json:"address"`
	DeliveryFee   float64        `json:"deliveryFee"`
	EstimatedTime string         `json:"estimatedTime"`
}

type createOrderRequest struct {
	Itens          []createOrderItemRequest   `json:"itens" binding:"required"`
	Total          float64                    `json:"total"`
	Cliente        createOrderClienteRequest  `json:"cliente" binding:"required"`
	Endereco       createOrderEnderecoRequest `json:"endereco"`
	FormaPagamento string                     `json:"formaPagamento"`
	Observacoes    string                     `json:"observacoes"`
}

/* =========================
   CREATE ORDER
========================= */

// CreateOrder persists a checkout. POST /api/orders
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		order, err := buildOrderFromRequest(req)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}

		log.Printf("[%s] order %s created, total %.2f", route, order.ID.Hex(), order.Total)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": orderConfirmation,
			"data":    order,
		})
	}
}

/* =========================
   LIST ORDERS
========================= */

// GetOrders lists every persisted order, newest first. GET /api/orders
func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/orders"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "data", Value: -1}})

		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		orders := []models.Order{}
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d orders", route, len(orders))
		respondWithData(c, http.StatusOK, orders)
	}
}

/* =========================
   DELETE ORDER
========================= */

// DeleteOrder removes an order by id. DELETE /api/orders?id=<id>
// Deleting an order that no longer exists still reports success: the staff
// panel refreshes its list either way and a double click on "remover" is
// not an error.
func DeleteOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/orders"
		defer handlePanic(c, route)

		id := strings.TrimSpace(c.Query("id"))
		if id == "" {
			respondWithError(c, http.StatusBadRequest, route, "ID do pedido não informado.")
			return
		}

		orderID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "ID do pedido inválido.")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("orders").DeleteOne(ctx, bson.M{"_id": orderID})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			log.Printf("[%s] order %s was already gone", route, id)
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Pedido removido com sucesso.",
		})
	}
}

/* =========================
   BUILD ORDER
========================= */

// buildOrderFromRequest validates the checkout payload and assembles the
// order document. The total is recomputed from the lines plus the delivery
// fee rather than trusted from the client.
func buildOrderFromRequest(req createOrderRequest) (models.Order, error) {
	if len(req.Itens) == 0 {
		return models.Order{}, errors.New("at least one item is required")
	}
	if strings.TrimSpace(req.Cliente.Nome) == "" {
		return models.Order{}, errors.New("customer name is required")
	}

	itens := make([]models.OrderItem, 0, len(req.Itens))
	subtotal := 0.0

	for _, item := range req.Itens {
		if item.Quantidade <= 0 {
			return models.Order{}, errors.New("quantidade must be greater than zero")
		}
		if item.Preco < 0 {
			return models.Order{}, errors.New("preco cannot be negative")
		}

		itens = append(itens, models.OrderItem{
			Nome:       strings.TrimSpace(item.Nome),
			Quantidade: item.Quantidade,
			Preco:      item.Preco,
			Observacao: strings.TrimSpace(item.Observacao),
		})
		subtotal += item.Preco * float64(item.Quantidade)
	}

	order := models.Order{
		Itens:  itens,
		Total:  subtotal + req.Endereco.DeliveryFee,
		Status: models.StatusFinalizado,
		Data:   time.Now(),
		Cliente: models.Cliente{
			Nome:     strings.TrimSpace(req.Cliente.Nome),
			Telefone: strings.TrimSpace(req.Cliente.Telefone),
		},
		Endereco: models.Endereco{
			Address:       req.Endereco.Address,
			DeliveryFee:   req.Endereco.DeliveryFee,
			EstimatedTime: req.Endereco.EstimatedTime,
		},
		FormaPagamento: strings.TrimSpace(req.FormaPagamento),
		Observacoes:    strings.TrimSpace(req.Observacoes),
	}

	return order, nil
}
