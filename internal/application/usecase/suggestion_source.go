package usecase

import (
	"unicode/utf8"

	"github.com/hH-13/tilde/internal/domain/entity"
)

// sourceBase carries the name, limit and minimum length shared by every source.
type sourceBase struct {
	name     entity.SourceName
	limit    int
	minChars int
}

func newSourceBase(spec entity.SourceSpec) sourceBase {
	return sourceBase{
		name:     spec.Name,
		limit:    max(spec.Limit, 0),
		minChars: max(spec.MinChars, 0),
	}
}

func (s sourceBase) Name() entity.SourceName {
	return s.name
}

func (s sourceBase) Limit() int {
	return s.limit
}

func (s sourceBase) IsTooShort(text string) bool {
	return utf8.RuneCountInString(text) < s.minChars
}

// truncate returns at most limit items.
func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// addSearchPrefix re-inserts "key"+"delimiter" in front of each item when q is
// a search, so accepting a suggestion keeps the command.
func addSearchPrefix(items []string, q *entity.ParsedQuery) []string {
	prefix := q.SearchPrefix()
	if prefix == "" {
		return items
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = prefix + item
	}
	return out
}
