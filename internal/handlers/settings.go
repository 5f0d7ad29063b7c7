package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cardapio/internal/menu"
	"cardapio/internal/settings"
)

// GetSettings returns the singleton aggregate, creating it with defaults on
// first read. GET /api/settings
func GetSettings(store settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/settings"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current, err := store.Load(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		respondWithData(c, http.StatusOK, current)
	}
}

// UpdateSettings merges the provided fields into the aggregate and persists
// it whole. Arrays replace wholesale; absent fields keep their value, which
// is how the status toggle and the delivery-fee form both go through here.
// PUT /api/settings
func UpdateSettings(store settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/settings"
		defer handlePanic(c, route)

		var patch settings.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if patch.Empty() {
			respondWithError(c, http.StatusBadRequest, route, "no fields to update")
			return
		}
		if patch.DeliveryFee != nil && *patch.DeliveryFee < 0 {
			respondWithError(c, http.StatusBadRequest, route, "deliveryFee cannot be negative")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current, err := store.Load(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		updated, err := store.Save(ctx, settings.Apply(current, patch))
		if errors.Is(err, settings.ErrVersionConflict) {
			respondWithError(c, http.StatusConflict, route, "settings changed concurrently, reload and retry")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] aggregate saved, version %d", route, updated.Version)
		respondWithData(c, http.StatusOK, updated)
	}
}

// GetMenu serves the storefront catalog: the persisted one, or the bundled
// default menu while the persisted catalog is empty. Categories come back
// in display order. GET /api/menu
func GetMenu(store settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/menu"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current, err := store.Load(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		catalog := menu.Effective(current)
		respondWithData(c, http.StatusOK, gin.H{
			"isOpen":      current.IsOpen,
			"deliveryFee": current.DeliveryFee,
			"categories":  catalog.SortedCategories(),
			"items":       catalog.Items,
		})
	}
}
