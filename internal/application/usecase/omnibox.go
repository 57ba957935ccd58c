package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/hH-13/tilde/internal/application/port"
	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/logging"
)

// ErrNothingToOpen is returned when a submitted query resolves to no destination.
var ErrNothingToOpen = errors.New("query resolves to no destination")

// ErrNoNavigator is returned by Submit when the use case cannot open URLs.
var ErrNoNavigator = errors.New("no navigator configured")

// OmniboxOptions holds the user-facing behaviour switches.
type OmniboxOptions struct {
	HelpKey         string
	InstantRedirect bool
	NewTab          bool
}

// OmniboxUseCase ties parsing, suggestions and navigation together the way an
// input box drives them: every keystroke goes through Input, Enter through Submit.
type OmniboxUseCase struct {
	parser    *QueryParser
	suggester *SuggestionAggregator
	navigator port.Navigator
	opts      OmniboxOptions
}

// NewOmniboxUseCase creates the omnibox use case. navigator may be nil when
// destinations are only resolved, never opened.
func NewOmniboxUseCase(
	parser *QueryParser,
	suggester *SuggestionAggregator,
	navigator port.Navigator,
	opts OmniboxOptions,
) *OmniboxUseCase {
	return &OmniboxUseCase{
		parser:    parser,
		suggester: suggester,
		navigator: navigator,
		opts:      opts,
	}
}

// InputOutput describes how the input box should react to new text.
type InputOutput struct {
	Query *entity.ParsedQuery
	// ClearInput asks the caller to empty the input box.
	ClearInput bool
	// ToggleHelp asks the caller to show or hide the command listing.
	ToggleHelp bool
	// Submitted is set when the input was submitted by instant redirect.
	Submitted *SubmitOutput
}

// Input handles a change of the input text. It does not fetch suggestions;
// callers run Suggest with the returned query, usually off the UI goroutine.
func (uc *OmniboxUseCase) Input(ctx context.Context, text string) (*InputOutput, error) {
	log := logging.FromContext(ctx)

	if uc.opts.HelpKey != "" && text == uc.opts.HelpKey {
		uc.suggester.Clear()
		log.Debug().Msg("help key typed")
		return &InputOutput{Query: uc.parser.Parse(""), ClearInput: true, ToggleHelp: true}, nil
	}

	q := uc.parser.Parse(text)
	out := &InputOutput{Query: q}

	if q.IsEmpty() {
		uc.suggester.Clear()
		out.ClearInput = true
		return out, nil
	}

	// A leading space opts out of instant redirect: the trimmed input still
	// matches the key, but the typed text does not.
	if uc.opts.InstantRedirect && q.IsKey() && text == q.Raw {
		log.Debug().Str("key", q.Key).Msg("instant redirect")
		submitted, err := uc.Submit(ctx, text)
		if err != nil {
			return out, err
		}
		out.Submitted = submitted
		out.ClearInput = true
	}

	return out, nil
}

// Suggest refreshes the suggestion list for q.
func (uc *OmniboxUseCase) Suggest(ctx context.Context, q *entity.ParsedQuery) (SuggestionState, bool) {
	return uc.suggester.Suggest(ctx, q)
}

// SubmitOutput lists what a submission opened.
type SubmitOutput struct {
	Query  *entity.ParsedQuery
	Opened []string
	NewTab bool
}

// Submit resolves text and opens its destinations. A script opens every
// destination in a new tab regardless of the new-tab option.
func (uc *OmniboxUseCase) Submit(ctx context.Context, text string) (*SubmitOutput, error) {
	ctx = logging.WithQuery(ctx, text)
	log := logging.FromContext(ctx)

	q := uc.parser.Parse(text)
	redirects := q.Redirects()
	if len(redirects) == 0 {
		return nil, ErrNothingToOpen
	}

	if uc.navigator == nil {
		return nil, ErrNoNavigator
	}

	newTab := uc.opts.NewTab || q.IsScript()
	out := &SubmitOutput{Query: q, NewTab: newTab}

	var errs []error
	for _, redirect := range redirects {
		if err := uc.navigator.Open(ctx, redirect, newTab); err != nil {
			errs = append(errs, fmt.Errorf("failed to open %s: %w", redirect, err))
			continue
		}
		out.Opened = append(out.Opened, redirect)
	}
	if err := errors.Join(errs...); err != nil {
		return out, err
	}

	log.Info().
		Str("kind", q.Kind.String()).
		Str("key", q.Key).
		Int("destinations", len(out.Opened)).
		Msg("query submitted")

	uc.suggester.OnSuccess(ctx, q)
	return out, nil
}

// Resolve parses text and records it as submitted without opening anything.
// It backs entry points where the caller performs the navigation itself,
// such as an HTTP redirect.
func (uc *OmniboxUseCase) Resolve(ctx context.Context, text string) (*entity.ParsedQuery, error) {
	q := uc.parser.Parse(text)
	if len(q.Redirects()) == 0 {
		return q, ErrNothingToOpen
	}
	uc.suggester.OnSuccess(ctx, q)
	return q, nil
}

// Parse resolves text without side effects.
func (uc *OmniboxUseCase) Parse(text string) *entity.ParsedQuery {
	return uc.parser.Parse(text)
}

// Commands returns the named commands for the help listing.
func (uc *OmniboxUseCase) Commands() []entity.Command {
	return uc.parser.ListedCommands()
}

// Options returns the behaviour switches.
func (uc *OmniboxUseCase) Options() OmniboxOptions {
	return uc.opts
}

// Suggester returns the aggregator owning the suggestion list.
func (uc *OmniboxUseCase) Suggester() *SuggestionAggregator {
	return uc.suggester
}
