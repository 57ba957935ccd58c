package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/hH-13/tilde/internal/application/port"
	"github.com/hH-13/tilde/internal/domain/entity"
)

// RemoteSource suggests phrases from a remote completion endpoint.
type RemoteSource struct {
	sourceBase
	fetcher port.PhraseFetcher
}

// NewRemoteSource creates a source that asks fetcher for phrases.
func NewRemoteSource(spec entity.SourceSpec, fetcher port.PhraseFetcher) *RemoteSource {
	return &RemoteSource{sourceBase: newSourceBase(spec), fetcher: fetcher}
}

// Suggestions fetches phrases for the working query. Short queries return
// immediately without a request.
func (s *RemoteSource) Suggestions(ctx context.Context, q *entity.ParsedQuery) ([]string, error) {
	if s.IsTooShort(q.Query) {
		return nil, nil
	}

	phrases, err := s.fetcher.FetchPhrases(ctx, q.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s suggestions: %w", s.name, err)
	}

	filtered := make([]string, 0, min(len(phrases), s.limit))
	for _, phrase := range phrases {
		if len(filtered) == s.limit {
			break
		}
		if strings.ToLower(phrase) == q.Lower {
			continue
		}
		filtered = append(filtered, phrase)
	}

	return addSearchPrefix(filtered, q), nil
}

// AddItem is a no-op.
func (*RemoteSource) AddItem(context.Context, *entity.ParsedQuery) error {
	return nil
}
