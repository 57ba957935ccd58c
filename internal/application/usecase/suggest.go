package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hH-13/tilde/internal/application/port"
	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/logging"
)

// noHighlight is the highlight index when nothing is highlighted.
const noHighlight = -1

// SuggestionState is the displayed suggestion list and its highlight.
type SuggestionState struct {
	// Generation identifies the Suggest call the list came from.
	Generation uint64
	Items      []string
	// Highlighted is the index into Items, or -1.
	Highlighted int
}

// HighlightedValue returns the highlighted suggestion, or "".
func (s SuggestionState) HighlightedValue() string {
	if s.Highlighted < 0 || s.Highlighted >= len(s.Items) {
		return ""
	}
	return s.Items[s.Highlighted]
}

// SuggestionAggregator fans a query out to every source, merges the results
// and owns the displayed list. Only the most recently issued Suggest call
// may replace the list.
type SuggestionAggregator struct {
	sources []port.SuggestionSource
	limit   int

	mu          sync.Mutex
	generation  uint64
	items       []string
	highlighted string
	onUpdate    func(SuggestionState)
}

// NewSuggestionAggregator creates an aggregator over sources in display order.
// limit caps the merged list.
func NewSuggestionAggregator(sources []port.SuggestionSource, limit int) *SuggestionAggregator {
	return &SuggestionAggregator{
		sources: append([]port.SuggestionSource(nil), sources...),
		limit:   max(limit, 0),
	}
}

// SetOnUpdate registers a callback invoked after every change of the list or
// highlight. It runs on the goroutine that made the change.
func (a *SuggestionAggregator) SetOnUpdate(fn func(SuggestionState)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onUpdate = fn
}

// Sources returns the configured sources in display order.
func (a *SuggestionAggregator) Sources() []port.SuggestionSource {
	return append([]port.SuggestionSource(nil), a.sources...)
}

// Suggest queries every source concurrently and applies the merged result
// unless a later call was issued meanwhile. applied reports whether the
// result became the displayed list; state is the displayed list either way.
func (a *SuggestionAggregator) Suggest(ctx context.Context, q *entity.ParsedQuery) (state SuggestionState, applied bool) {
	gen := a.nextGeneration()

	merged := a.Lookup(ctx, q)

	state, applied = a.apply(gen, merged)
	if q != nil && q.Query != "" {
		logging.FromContext(ctx).Debug().
			Str("query", q.Query).
			Uint64("generation", gen).
			Int("suggestions", len(merged)).
			Bool("applied", applied).
			Msg("suggestions merged")
	}
	return state, applied
}

// Lookup runs the fan-out and merge for q without touching the displayed
// list. It is safe for any number of concurrent callers.
func (a *SuggestionAggregator) Lookup(ctx context.Context, q *entity.ParsedQuery) []string {
	if q == nil || q.Query == "" {
		return nil
	}

	results := make([][]string, len(a.sources))

	var g errgroup.Group
	for i, src := range a.sources {
		if src.IsTooShort(gateText(src, q)) {
			continue
		}
		g.Go(func() error {
			srcCtx := logging.WithSource(ctx, string(src.Name()))
			items, err := collect(srcCtx, src, q)
			if err != nil {
				logging.FromContext(srcCtx).Warn().Err(err).Msg("suggestion source failed")
				return nil
			}
			results[i] = truncate(items, src.Limit())
			return nil
		})
	}
	_ = g.Wait()

	return mergeUnique(results, a.limit)
}

// gateText is the text src applies its minimum length to.
func gateText(src port.SuggestionSource, q *entity.ParsedQuery) string {
	if g, ok := src.(port.GatedSource); ok {
		return g.GateText(q)
	}
	return q.Query
}

// OnSuccess records a submitted query in every source and clears the list.
// Recording failures are logged and otherwise ignored.
func (a *SuggestionAggregator) OnSuccess(ctx context.Context, q *entity.ParsedQuery) {
	log := logging.FromContext(ctx)
	for _, src := range a.sources {
		if err := src.AddItem(logging.WithSource(ctx, string(src.Name())), q); err != nil {
			log.Warn().Err(err).Str("source", string(src.Name())).Msg("failed to record submission")
		}
	}
	a.Clear()
}

// Clear empties the list and discards results of calls still in flight.
func (a *SuggestionAggregator) Clear() SuggestionState {
	state, _ := a.apply(a.nextGeneration(), nil)
	return state
}

// State returns the displayed list.
func (a *SuggestionAggregator) State() SuggestionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stateLocked()
}

// HighlightNext moves the highlight down. From nothing it highlights the
// first item; past the last item it highlights nothing.
func (a *SuggestionAggregator) HighlightNext() SuggestionState {
	return a.moveHighlight(func(idx, _ int) int {
		if idx == noHighlight {
			return 0
		}
		return idx + 1
	})
}

// HighlightPrevious moves the highlight up. From the first item or from
// nothing it highlights nothing.
func (a *SuggestionAggregator) HighlightPrevious() SuggestionState {
	return a.moveHighlight(func(idx, _ int) int {
		if idx <= 0 {
			return noHighlight
		}
		return idx - 1
	})
}

// Highlight highlights value if it is displayed, otherwise clears the highlight.
func (a *SuggestionAggregator) Highlight(value string) SuggestionState {
	return a.moveHighlight(func(_, _ int) int {
		return a.indexLocked(value)
	})
}

// ClearHighlight removes the highlight.
func (a *SuggestionAggregator) ClearHighlight() SuggestionState {
	return a.moveHighlight(func(_, _ int) int { return noHighlight })
}

func (a *SuggestionAggregator) moveHighlight(next func(idx, n int) int) SuggestionState {
	a.mu.Lock()
	idx := next(a.indexLocked(a.highlighted), len(a.items))
	if idx < 0 || idx >= len(a.items) {
		a.highlighted = ""
	} else {
		a.highlighted = a.items[idx]
	}
	state := a.stateLocked()
	notify := a.onUpdate
	a.mu.Unlock()

	if notify != nil {
		notify(state)
	}
	return state
}

func (a *SuggestionAggregator) nextGeneration() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.generation++
	return a.generation
}

// apply replaces the list if gen is still the latest generation. The
// highlight survives when its value is still displayed.
func (a *SuggestionAggregator) apply(gen uint64, items []string) (SuggestionState, bool) {
	a.mu.Lock()
	if gen != a.generation {
		state := a.stateLocked()
		a.mu.Unlock()
		return state, false
	}

	a.items = items
	if a.indexLocked(a.highlighted) == noHighlight {
		a.highlighted = ""
	}
	state := a.stateLocked()
	notify := a.onUpdate
	a.mu.Unlock()

	if notify != nil {
		notify(state)
	}
	return state, true
}

func (a *SuggestionAggregator) indexLocked(value string) int {
	if value == "" {
		return noHighlight
	}
	return slices.Index(a.items, value)
}

func (a *SuggestionAggregator) stateLocked() SuggestionState {
	return SuggestionState{
		Generation:  a.generation,
		Items:       slices.Clone(a.items),
		Highlighted: a.indexLocked(a.highlighted),
	}
}

// collect calls the source and turns a panic into an error so one broken
// source cannot take down the merge.
func collect(ctx context.Context, src port.SuggestionSource, q *entity.ParsedQuery) (items []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("source %s panicked: %v", src.Name(), r)
		}
	}()
	return src.Suggestions(ctx, q)
}

// mergeUnique flattens results in order, keeps the first occurrence of each
// item and stops at limit.
func mergeUnique(results [][]string, limit int) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0, limit)
	for _, items := range results {
		for _, item := range items {
			if len(merged) == limit {
				return merged
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			merged = append(merged, item)
		}
	}
	return merged
}
