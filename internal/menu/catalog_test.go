package menu

import (
	"errors"
	"testing"

	"cardapio/internal/models"
)

func testSettings() models.Settings {
	return models.Settings{
		IsOpen:      true,
		DeliveryFee: 5.0,
		Categories: []models.Category{
			{ID: "c1", Name: "Entradas", Order: 2},
			{ID: "c2", Name: "Bebidas", Order: 1},
			{ID: "c3", Name: "Sobremesas", Order: 2},
		},
		Items: []models.MenuItem{
			{ID: "i1", Name: "Pão de Alho", Price: 12.90, CategoryID: "c1", IsAvailable: true, Order: 2},
			{ID: "i2", Name: "Bruschetta", Price: 16.90, CategoryID: "c1", IsAvailable: true, Order: 1},
			{ID: "i3", Name: "Suco", Price: 8.00, CategoryID: "c2", IsAvailable: true, Order: 1},
		},
	}
}

func TestDeleteCategoryCascadesToItems(t *testing.T) {
	s := testSettings()

	if err := DeleteCategory(&s, "c1"); err != nil {
		t.Fatalf("DeleteCategory returned error: %v", err)
	}

	for _, category := range s.Categories {
		if category.ID == "c1" {
			t.Fatal("category c1 still present after delete")
		}
	}
	for _, item := range s.Items {
		if item.CategoryID == "c1" {
			t.Fatalf("item %s still references deleted category", item.ID)
		}
	}
	if len(s.Items) != 1 || s.Items[0].ID != "i3" {
		t.Fatalf("expected only i3 to survive, got %+v", s.Items)
	}
}

func TestDeleteCategoryUnknownID(t *testing.T) {
	s := testSettings()
	if err := DeleteCategory(&s, "missing"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if len(s.Categories) != 3 || len(s.Items) != 3 {
		t.Fatal("aggregate must not change on failed delete")
	}
}

func TestSortedCategoriesStableOnTies(t *testing.T) {
	catalog := Catalog{Categories: testSettings().Categories}
	sorted := catalog.SortedCategories()

	want := []string{"c2", "c1", "c3"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, sorted[i].ID)
		}
	}
}

func TestItemsForCategorySorted(t *testing.T) {
	s := testSettings()
	catalog := Catalog{Categories: s.Categories, Items: s.Items}

	items := catalog.ItemsForCategory("c1")
	if len(items) != 2 || items[0].ID != "i2" || items[1].ID != "i1" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestEffectiveFallsBackToDefaultCatalog(t *testing.T) {
	catalog := Effective(models.DefaultSettings())
	if len(catalog.Categories) == 0 || len(catalog.Items) == 0 {
		t.Fatal("expected bundled default catalog for empty settings")
	}

	persisted := Effective(testSettings())
	if len(persisted.Categories) != 3 {
		t.Fatalf("expected persisted catalog, got %d categories", len(persisted.Categories))
	}
}

func TestAddItemGeneratesIDAndChecksCategory(t *testing.T) {
	s := testSettings()

	item, err := AddItem(&s, models.MenuItem{Name: "Chá Gelado", Price: 7.00, CategoryID: "c2", IsAvailable: true, Order: 2})
	if err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if item.ID == "" {
		t.Fatal("expected generated id")
	}

	if _, err := AddItem(&s, models.MenuItem{Name: "Orfão", Price: 1, CategoryID: "nope"}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if _, err := AddItem(&s, models.MenuItem{Name: "Grátis demais", Price: -1, CategoryID: "c2"}); err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestUpdateItemTogglesAvailabilityWithoutDeleting(t *testing.T) {
	s := testSettings()

	updated := s.Items[0]
	updated.IsAvailable = false
	if err := UpdateItem(&s, updated); err != nil {
		t.Fatalf("UpdateItem returned error: %v", err)
	}

	if len(s.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(s.Items))
	}
	if s.Items[0].IsAvailable {
		t.Fatal("expected i1 to be unavailable")
	}
}

func TestAddCategoryRequiresName(t *testing.T) {
	s := testSettings()
	if _, err := AddCategory(&s, models.Category{Name: "   "}); err == nil {
		t.Fatal("expected error for blank name")
	}

	category, err := AddCategory(&s, models.Category{Name: "Massas", Order: 5})
	if err != nil {
		t.Fatalf("AddCategory returned error: %v", err)
	}
	if category.ID == "" {
		t.Fatal("expected generated id")
	}
}
