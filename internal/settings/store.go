package settings

import (
	"context"
	"errors"

	"cardapio/internal/models"
)

// ErrVersionConflict reports a save whose version no longer matches the
// stored aggregate: another writer got there first and the caller must
// reload before retrying.
var ErrVersionConflict = errors.New("settings version conflict")

// Store reads and writes the settings singleton. Handlers receive a Store
// explicitly; there is no package-level instance.
type Store interface {
	// Load returns the aggregate, creating it with defaults when absent.
	Load(ctx context.Context) (models.Settings, error)
	// Save writes the full aggregate conditionally on its version and
	// returns the stored result with the version bumped.
	Save(ctx context.Context, s models.Settings) (models.Settings, error)
}

// Patch is a partial settings update. Nil fields keep the current value;
// provided arrays replace the stored ones wholesale.
type Patch struct {
	IsOpen      *bool              `json:"isOpen"`
	DeliveryFee *float64           `json:"deliveryFee"`
	Categories  *[]models.Category `json:"categories"`
	Items       *[]models.MenuItem `json:"items"`
}

// Apply merges the patch into the aggregate with shallow field overwrite.
func Apply(s models.Settings, p Patch) models.Settings {
	if p.IsOpen != nil {
		s.IsOpen = *p.IsOpen
	}
	if p.DeliveryFee != nil {
		s.DeliveryFee = *p.DeliveryFee
	}
	if p.Categories != nil {
		s.Categories = *p.Categories
	}
	if p.Items != nil {
		s.Items = *p.Items
	}
	return s
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.IsOpen == nil && p.DeliveryFee == nil && p.Categories == nil && p.Items == nil
}
