package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cardapio/internal/models"
	"cardapio/internal/settings"
)

func newSettingsRouter(store settings.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/settings", GetSettings(store))
	r.PUT("/api/settings", UpdateSettings(store))
	r.GET("/api/menu", GetMenu(store))
	r.POST("/api/settings/categories", CreateCategory(store))
	r.DELETE("/api/settings/categories/:id", DeleteCategory(store))
	r.POST("/api/settings/items", CreateMenuItem(store))
	r.PUT("/api/settings/items/:id", UpdateMenuItem(store))
	return r
}

// seed replaces the store's aggregate with a small catalog.
func seed(t *testing.T, store settings.Store) models.Settings {
	t.Helper()
	ctx := context.Background()

	s, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("seed load: %v", err)
	}
	s.Categories = []models.Category{
		{ID: "c1", Name: "Entradas", Order: 1},
		{ID: "c2", Name: "Bebidas", Order: 2},
	}
	s.Items = []models.MenuItem{
		{ID: "i1", Name: "Pão de Alho", Price: 12.90, CategoryID: "c1", IsAvailable: true, Order: 1},
		{ID: "i2", Name: "Suco", Price: 8.00, CategoryID: "c2", IsAvailable: true, Order: 1},
	}
	saved, err := store.Save(ctx, s)
	if err != nil {
		t.Fatalf("seed save: %v", err)
	}
	return saved
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestGetSettingsCreatesDefaults(t *testing.T) {
	r := newSettingsRouter(settings.NewMemoryStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/settings", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	if data["isOpen"] != true {
		t.Fatalf("expected isOpen=true, got %v", data["isOpen"])
	}
	if data["deliveryFee"] != 5.0 {
		t.Fatalf("expected deliveryFee 5.0, got %v", data["deliveryFee"])
	}
}

func TestToggleOpenLeavesRestOfAggregate(t *testing.T) {
	store := settings.NewMemoryStore()
	r := newSettingsRouter(store)
	seeded := seed(t, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/settings", strings.NewReader(`{"isOpen":false}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	current, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if current.IsOpen {
		t.Fatal("expected isOpen=false after toggle")
	}
	if current.DeliveryFee != seeded.DeliveryFee {
		t.Fatalf("deliveryFee changed: %v", current.DeliveryFee)
	}
	if len(current.Categories) != len(seeded.Categories) || len(current.Items) != len(seeded.Items) {
		t.Fatal("catalog changed by status toggle")
	}
}

func TestUpdateSettingsRejectsEmptyPatch(t *testing.T) {
	r := newSettingsRouter(settings.NewMemoryStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/settings", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetMenuFallsBackToBundledCatalog(t *testing.T) {
	r := newSettingsRouter(settings.NewMemoryStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/menu", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	categories := data["categories"].([]interface{})
	if len(categories) == 0 {
		t.Fatal("expected bundled categories for an empty persisted catalog")
	}
	first := categories[0].(map[string]interface{})
	if first["name"] != "Entradas" {
		t.Fatalf("expected first category Entradas, got %v", first["name"])
	}
}

func TestDeleteCategoryEndpointCascades(t *testing.T) {
	store := settings.NewMemoryStore()
	r := newSettingsRouter(store)
	seed(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/settings/categories/c1", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	current, _ := store.Load(context.Background())
	for _, item := range current.Items {
		if item.CategoryID == "c1" {
			t.Fatalf("item %s survived the cascade", item.ID)
		}
	}
	if len(current.Categories) != 1 || current.Categories[0].ID != "c2" {
		t.Fatalf("unexpected categories: %+v", current.Categories)
	}
}

func TestDeleteUnknownCategoryIs404(t *testing.T) {
	store := settings.NewMemoryStore()
	r := newSettingsRouter(store)
	seed(t, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/settings/categories/missing", nil))

	if w.Code != 404 {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateMenuItemRequiresExistingCategory(t *testing.T) {
	store := settings.NewMemoryStore()
	r := newSettingsRouter(store)
	seed(t, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/settings/items",
		strings.NewReader(`{"name":"Chá Gelado","price":7.0,"categoryId":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != 404 {
		t.Fatalf("expected 404 for unknown category, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateMenuItemTogglesAvailability(t *testing.T) {
	store := settings.NewMemoryStore()
	r := newSettingsRouter(store)
	seed(t, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/settings/items/i1",
		strings.NewReader(`{"name":"Pão de Alho","price":12.90,"categoryId":"c1","isAvailable":false,"order":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	current, _ := store.Load(context.Background())
	if len(current.Items) != 2 {
		t.Fatalf("toggle must not delete, got %d items", len(current.Items))
	}
	for _, item := range current.Items {
		if item.ID == "i1" && item.IsAvailable {
			t.Fatal("expected i1 unavailable")
		}
	}
}
