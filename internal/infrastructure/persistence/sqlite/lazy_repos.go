package sqlite

import (
	"context"
	"sync"

	"github.com/hH-13/tilde/internal/application/port"
	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/domain/repository"
)

// LazyHistoryRepository wraps the history repository with lazy database
// initialization. It is a drop-in replacement for NewHistoryRepository.
type LazyHistoryRepository struct {
	provider port.DatabaseProvider
	repo     repository.HistoryRepository
	once     sync.Once
	initErr  error
}

// NewLazyHistoryRepository creates a lazy-loading history repository.
func NewLazyHistoryRepository(provider port.DatabaseProvider) repository.HistoryRepository {
	return &LazyHistoryRepository{provider: provider}
}

func (r *LazyHistoryRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewHistoryRepository(db)
	})
	return r.initErr
}

func (r *LazyHistoryRepository) Load(ctx context.Context) ([]entity.HistoryItem, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Load(ctx)
}

func (r *LazyHistoryRepository) Save(ctx context.Context, items []entity.HistoryItem) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, items)
}

func (r *LazyHistoryRepository) Clear(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Clear(ctx)
}
