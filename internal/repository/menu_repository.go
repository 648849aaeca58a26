package repository

import (
	"context"
	"sync"

	"plateperfect/internal/model"

	"github.com/rs/zerolog"
)

// menuRepository implements MenuRepository with an ordered in-memory slice.
type menuRepository struct {
	mu     sync.RWMutex
	items  []model.MenuItem
	index  map[string]struct{}
	logger zerolog.Logger
}

// NewMenuRepository creates an empty in-memory menu repository.
func NewMenuRepository(logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		index:  make(map[string]struct{}),
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// Append adds an item to the end of the sequence.
func (r *menuRepository) Append(ctx context.Context, item model.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[item.ID]; exists {
		r.logger.Warn().Str("item_id", item.ID).Msg("menu item id already present")
		return model.ErrDuplicateMenuItem
	}

	r.items = append(r.items, item.Clone())
	r.index[item.ID] = struct{}{}

	r.logger.Debug().
		Str("item_id", item.ID).
		Int("count", len(r.items)).
		Msg("menu item appended")

	return nil
}

// Remove deletes the first item with the given id.
func (r *menuRepository) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[id]; !exists {
		r.logger.Debug().Str("item_id", id).Msg("menu item not present, nothing removed")
		return false, nil
	}

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	delete(r.index, id)

	r.logger.Debug().
		Str("item_id", id).
		Int("count", len(r.items)).
		Msg("menu item removed")

	return true, nil
}

// List returns a copy of all items in insertion order.
func (r *menuRepository) List(ctx context.Context) []model.MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.MenuItem, len(r.items))
	for i, item := range r.items {
		items[i] = item.Clone()
	}
	return items
}

// Exists reports whether an item with the given id is on the menu.
func (r *menuRepository) Exists(ctx context.Context, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.index[id]
	return exists
}

// Count returns the number of items.
func (r *menuRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// AveragePrice returns the mean price, or 0 when the menu is empty. The sum is taken in
// float64 so prices near the int limit cannot wrap it.
func (r *menuRepository) AveragePrice(ctx context.Context) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return 0
	}

	var sum float64
	for _, item := range r.items {
		sum += float64(item.Price)
	}
	return sum / float64(len(r.items))
}
