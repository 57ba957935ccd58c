package usecase

import (
	"context"

	"github.com/hH-13/tilde/internal/application/port"
	"github.com/hH-13/tilde/internal/domain/entity"
)

// DefaultSource suggests static completions configured per exact input.
type DefaultSource struct {
	sourceBase
	defaults map[string][]string
}

var _ port.GatedSource = (*DefaultSource)(nil)

// NewDefaultSource creates a source backed by a key to suggestions mapping.
func NewDefaultSource(spec entity.SourceSpec, defaults map[string][]string) *DefaultSource {
	copied := make(map[string][]string, len(defaults))
	for k, v := range defaults {
		copied[k] = append([]string(nil), v...)
	}
	return &DefaultSource{sourceBase: newSourceBase(spec), defaults: copied}
}

// GateText is the raw input, the text the defaults are keyed on.
func (*DefaultSource) GateText(q *entity.ParsedQuery) string {
	return q.Raw
}

// Suggestions returns the configured entries for the raw input, unfiltered.
func (s *DefaultSource) Suggestions(_ context.Context, q *entity.ParsedQuery) ([]string, error) {
	if s.IsTooShort(s.GateText(q)) {
		return nil, nil
	}
	items := truncate(s.defaults[q.Raw], s.limit)
	return append([]string(nil), items...), nil
}

// AddItem is a no-op.
func (*DefaultSource) AddItem(context.Context, *entity.ParsedQuery) error {
	return nil
}
