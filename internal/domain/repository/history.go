package repository

import (
	"context"

	"github.com/hH-13/tilde/internal/domain/entity"
)

// HistoryRepository persists the frequency-ranked list of submitted queries.
// Writes replace the whole list; the last writer wins.
type HistoryRepository interface {
	// Load returns every item, sorted by descending count.
	Load(ctx context.Context) ([]entity.HistoryItem, error)

	// Save replaces the stored list with items, keeping their order.
	Save(ctx context.Context, items []entity.HistoryItem) error

	// Clear removes every item.
	Clear(ctx context.Context) error
}
