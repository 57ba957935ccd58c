package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/domain/repository"
	"github.com/hH-13/tilde/internal/logging"
)

const (
	selectHistory = `SELECT text, count FROM history_items ORDER BY position ASC`
	deleteHistory = `DELETE FROM history_items`
	insertHistory = `INSERT INTO history_items (text, count, position) VALUES (?, ?, ?)`
)

type historyRepo struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite-backed history repository.
func NewHistoryRepository(db *sql.DB) repository.HistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) Load(ctx context.Context) ([]entity.HistoryItem, error) {
	rows, err := r.db.QueryContext(ctx, selectHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]entity.HistoryItem, 0)
	for rows.Next() {
		var item entity.HistoryItem
		if err := rows.Scan(&item.Text, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan history item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	// Rows written by older versions or by hand may be out of order.
	entity.SortHistory(items)
	return items, nil
}

// Save replaces the table contents in one transaction. Items sharing a text
// (case-insensitively) collapse into the first occurrence.
func (r *historyRepo) Save(ctx context.Context, items []entity.HistoryItem) (err error) {
	log := logging.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteHistory); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertHistory)
	if err != nil {
		return fmt.Errorf("failed to prepare history insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	seen := make(map[string]struct{}, len(items))
	position := 0
	for _, item := range items {
		if item.Text == "" || item.Count < 1 {
			continue
		}
		if _, dup := seen[item.Text]; dup {
			continue
		}
		seen[item.Text] = struct{}{}

		if _, err = stmt.ExecContext(ctx, item.Text, item.Count, position); err != nil {
			return fmt.Errorf("failed to insert history item: %w", err)
		}
		position++
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history: %w", err)
	}

	log.Debug().Int("items", position).Msg("history saved")
	return nil
}

func (r *historyRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteHistory); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
