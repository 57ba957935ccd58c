package port

import (
	"context"

	"github.com/hH-13/tilde/internal/domain/entity"
)

// SuggestionSource produces candidate completions for an in-progress query.
// Synchronous sources simply return from Suggestions without blocking.
type SuggestionSource interface {
	// Name identifies the source in logs and configuration.
	Name() entity.SourceName

	// Limit is the maximum number of suggestions the source returns.
	Limit() int

	// IsTooShort reports whether text is shorter than the source's minimum.
	// A source must return no suggestions and perform no I/O in that case.
	IsTooShort(text string) bool

	// Suggestions returns at most Limit candidates for q.
	Suggestions(ctx context.Context, q *entity.ParsedQuery) ([]string, error)

	// AddItem is called once per successful submission.
	// Stateless sources return nil.
	AddItem(ctx context.Context, q *entity.ParsedQuery) error
}

// GatedSource is implemented by sources whose minimum length applies to
// another text than the working query, such as the raw input.
type GatedSource interface {
	GateText(q *entity.ParsedQuery) string
}

// PhraseFetcher retrieves suggestion phrases from a remote endpoint.
type PhraseFetcher interface {
	FetchPhrases(ctx context.Context, query string) ([]string, error)
}
