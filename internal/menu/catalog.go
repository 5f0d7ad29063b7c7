package menu

import (
	"errors"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cardapio/internal/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("item not found")
)

// Catalog pairs the category and item arrays of the settings aggregate so
// the mutation helpers can keep the two consistent.
type Catalog struct {
	Categories []models.Category
	Items      []models.MenuItem
}

// Effective resolves what the storefront should display: the persisted
// catalog, or the bundled default menu while the persisted one is empty.
func Effective(s models.Settings) Catalog {
	if len(s.Categories) == 0 && len(s.Items) == 0 {
		categories, items := DefaultCatalog()
		return Catalog{Categories: categories, Items: items}
	}
	return Catalog{Categories: s.Categories, Items: s.Items}
}

// SortedCategories returns categories in display order. The sort is stable,
// so equal order values keep their insertion order.
func (c Catalog) SortedCategories() []models.Category {
	out := make([]models.Category, len(c.Categories))
	copy(out, c.Categories)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// ItemsForCategory returns the category's items in display order.
func (c Catalog) ItemsForCategory(categoryID string) []models.MenuItem {
	out := make([]models.MenuItem, 0)
	for _, item := range c.Items {
		if item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// AddCategory appends a category to the aggregate, generating an id when
// none was provided.
func AddCategory(s *models.Settings, category models.Category) (models.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return models.Category{}, errors.New("name required")
	}
	if category.ID == "" {
		category.ID = primitive.NewObjectID().Hex()
	}
	s.Categories = append(s.Categories, category)
	return category, nil
}

// UpdateCategory replaces the matching category wholesale.
func UpdateCategory(s *models.Settings, category models.Category) error {
	for i := range s.Categories {
		if s.Categories[i].ID == category.ID {
			s.Categories[i] = category
			return nil
		}
	}
	return ErrCategoryNotFound
}

// DeleteCategory removes the category and every item that referenced it.
func DeleteCategory(s *models.Settings, categoryID string) error {
	found := false
	categories := s.Categories[:0]
	for _, category := range s.Categories {
		if category.ID == categoryID {
			found = true
			continue
		}
		categories = append(categories, category)
	}
	if !found {
		return ErrCategoryNotFound
	}
	s.Categories = categories

	items := s.Items[:0]
	for _, item := range s.Items {
		if item.CategoryID != categoryID {
			items = append(items, item)
		}
	}
	s.Items = items
	return nil
}

// AddItem appends a menu item, generating an id when none was provided.
// The referenced category must exist.
func AddItem(s *models.Settings, item models.MenuItem) (models.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return models.MenuItem{}, errors.New("name required")
	}
	if item.Price < 0 {
		return models.MenuItem{}, errors.New("price cannot be negative")
	}
	if !hasCategory(s, item.CategoryID) {
		return models.MenuItem{}, ErrCategoryNotFound
	}
	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
	}
	s.Items = append(s.Items, item)
	return item, nil
}

// UpdateItem replaces the matching item wholesale. Toggling availability
// goes through here; it never deletes the item.
func UpdateItem(s *models.Settings, item models.MenuItem) error {
	if item.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if !hasCategory(s, item.CategoryID) {
		return ErrCategoryNotFound
	}
	for i := range s.Items {
		if s.Items[i].ID == item.ID {
			s.Items[i] = item
			return nil
		}
	}
	return ErrItemNotFound
}

// DeleteItem removes the matching item.
func DeleteItem(s *models.Settings, itemID string) error {
	items := s.Items[:0]
	found := false
	for _, item := range s.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return ErrItemNotFound
	}
	s.Items = items
	return nil
}

func hasCategory(s *models.Settings, categoryID string) bool {
	for _, category := range s.Categories {
		if category.ID == categoryID {
			return true
		}
	}
	return false
}
