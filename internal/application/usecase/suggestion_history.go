package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/domain/repository"
	"github.com/hH-13/tilde/internal/logging"
)

// HistorySource suggests previously submitted queries, most used first.
// The list is loaded lazily and cached; Invalidate drops the cache.
type HistorySource struct {
	sourceBase
	repo repository.HistoryRepository

	mu     sync.Mutex
	items  []entity.HistoryItem
	loaded bool
}

// NewHistorySource creates a history source over repo.
func NewHistorySource(spec entity.SourceSpec, repo repository.HistoryRepository) *HistorySource {
	return &HistorySource{sourceBase: newSourceBase(spec), repo: repo}
}

// Suggestions returns stored queries containing the current one, excluding
// an exact repeat. A failing store yields no suggestions.
func (s *HistorySource) Suggestions(ctx context.Context, q *entity.ParsedQuery) ([]string, error) {
	if s.IsTooShort(q.Lower) {
		return nil, nil
	}

	items := s.snapshot(ctx)

	matches := make([]string, 0, s.limit)
	for _, item := range items {
		if len(matches) == s.limit {
			break
		}
		text := strings.ToLower(item.Text)
		if text == q.Lower || !strings.Contains(text, q.Lower) {
			continue
		}
		matches = append(matches, item.Text)
	}

	return addSearchPrefix(matches, q), nil
}

// AddItem counts one more use of the submitted query and persists the list.
// Path queries and queries shorter than the minimum are not recorded. When
// the stored list cannot be read nothing is written, so the store is never
// replaced by a partial list.
func (s *HistorySource) AddItem(ctx context.Context, q *entity.ParsedQuery) error {
	if q.Lower == "" || q.IsPath() || s.IsTooShort(q.Lower) {
		return nil
	}

	log := logging.FromContext(ctx)

	s.mu.Lock()
	if err := s.loadLocked(ctx); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to load history, not recording: %w", err)
	}
	s.items = entity.RecordHistory(s.items, q.Lower)
	items := append([]entity.HistoryItem(nil), s.items...)
	s.mu.Unlock()

	if err := s.repo.Save(ctx, items); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	log.Debug().Str("query", q.Lower).Int("items", len(items)).Msg("history recorded")
	return nil
}

// Invalidate forces the next read to reload from the store.
func (s *HistorySource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.items = nil
}

// Items returns the cached list, loading it first if needed.
func (s *HistorySource) Items(ctx context.Context) []entity.HistoryItem {
	return s.snapshot(ctx)
}

func (s *HistorySource) snapshot(ctx context.Context) []entity.HistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("history unavailable, continuing without it")
	}
	return append([]entity.HistoryItem(nil), s.items...)
}

func (s *HistorySource) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	items, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	entity.SortHistory(items)
	s.items = items
	s.loaded = true
	return nil
}
