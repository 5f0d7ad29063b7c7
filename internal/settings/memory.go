package settings

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cardapio/internal/models"
)

// MemoryStore holds the aggregate in process memory with the same
// read-or-create and version semantics as the Mongo store. Used by tests
// and useful for running the API without a database.
type MemoryStore struct {
	mu      sync.Mutex
	current *models.Settings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		def := models.DefaultSettings()
		def.ID = primitive.NewObjectID()
		def.Version = 1
		s.current = &def
	}
	return clone(*s.current), nil
}

func (s *MemoryStore) Save(ctx context.Context, in models.Settings) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != in.ID || s.current.Version != in.Version {
		return models.Settings{}, ErrVersionConflict
	}

	next := clone(in)
	next.Version = in.Version + 1
	s.current = &next
	return clone(next), nil
}

func clone(s models.Settings) models.Settings {
	out := s
	out.Categories = append([]models.Category(nil), s.Categories...)
	out.Items = append([]models.MenuItem(nil), s.Items...)
	return out
}
