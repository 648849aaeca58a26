package repository

import (
	"context"

	"plateperfect/internal/model"
)

// MenuRepository defines the interface for the canonical menu item sequence.
type MenuRepository interface {
	// Append adds an item to the end of the sequence.
	// Returns model.ErrDuplicateMenuItem if the id is already present.
	Append(ctx context.Context, item model.MenuItem) error

	// Remove deletes the item with the given id.
	// Reports false without error when no item matches.
	Remove(ctx context.Context, id string) (bool, error)

	// List returns a copy of all items in insertion order.
	List(ctx context.Context) []model.MenuItem

	// Exists reports whether an item with the given id is on the menu.
	Exists(ctx context.Context, id string) bool

	// Count returns the number of items.
	Count(ctx context.Context) int

	// AveragePrice returns the mean price, or 0 when the menu is empty.
	AveragePrice(ctx context.Context) float64
}
