package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hH-13/tilde/internal/application/port"
	portmocks "github.com/hH-13/tilde/internal/application/port/mocks"
	"github.com/hH-13/tilde/internal/application/usecase"
	"github.com/hH-13/tilde/internal/domain/entity"
)

// staticSource returns fixed suggestions, optionally blocking per query until released.
type staticSource struct {
	name     entity.SourceName
	limit    int
	minChars int
	items    map[string][]string
	err      error

	mu      sync.Mutex
	gates   map[string]chan struct{}
	started chan string
	calls   []string
	added   []string
}

func newStaticSource(name string, items map[string][]string) *staticSource {
	return &staticSource{
		name:  entity.SourceName(name),
		limit: 10,
		items: items,
		gates: make(map[string]chan struct{}),
	}
}

func (s *staticSource) Name() entity.SourceName { return s.name }
func (s *staticSource) Limit() int              { return s.limit }
func (s *staticSource) IsTooShort(text string) bool {
	return len(text) < s.minChars
}

func (s *staticSource) Suggestions(_ context.Context, q *entity.ParsedQuery) ([]string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, q.Query)
	gate := s.gates[q.Query]
	started := s.started
	s.mu.Unlock()

	if started != nil {
		started <- q.Query
	}
	if gate != nil {
		<-gate
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.items[q.Query], nil
}

func (s *staticSource) AddItem(_ context.Context, q *entity.ParsedQuery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.added = append(s.added, q.Lower)
	return nil
}

func (s *staticSource) block(query string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	gate := make(chan struct{})
	s.gates[query] = gate
	return gate
}

func query(text string) *entity.ParsedQuery {
	return &entity.ParsedQuery{Raw: text, Query: text, Lower: text, Kind: entity.MatchFallback}
}

func TestSuggestionAggregator_MergesInOrderWithoutDuplicates(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()

	first := newStaticSource("first", map[string][]string{"q": {"x", "y"}})
	second := newStaticSource("second", map[string][]string{"q": {"y", "z"}})

	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{first, second}, 5)
	state, applied := agg.Suggest(ctx, query("q"))

	assert.True(t, applied)
	assert.Equal(t, []string{"x", "y", "z"}, state.Items)
	assert.Equal(t, -1, state.Highlighted)
}

func TestSuggestionAggregator_AppliesLimits(t *testing.T) {
	ctx := testContext()

	first := newStaticSource("first", map[string][]string{"q": {"a", "b", "c"}})
	first.limit = 2
	second := newStaticSource("second", map[string][]string{"q": {"d", "e", "f"}})

	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{first, second}, 3)
	state, _ := agg.Suggest(ctx, query("q"))

	assert.Equal(t, []string{"a", "b", "d"}, state.Items)
}

func TestSuggestionAggregator_EmptyQuerySkipsSources(t *testing.T) {
	ctx := testContext()

	src := portmocks.NewMockSuggestionSource(t)
	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{src}, 5)

	state, applied := agg.Suggest(ctx, &entity.ParsedQuery{})

	assert.True(t, applied)
	assert.Empty(t, state.Items)
	src.AssertNotCalled(t, "Suggestions", mock.Anything, mock.Anything)
}

func TestSuggestionAggregator_SkipsSourcesBelowMinChars(t *testing.T) {
	ctx := testContext()

	short := portmocks.NewMockSuggestionSource(t)
	short.EXPECT().IsTooShort("ab").Return(true)

	ok := portmocks.NewMockSuggestionSource(t)
	ok.EXPECT().IsTooShort("ab").Return(false)
	ok.EXPECT().Suggestions(mock.Anything, mock.Anything).Return([]string{"abc"}, nil)
	ok.EXPECT().Limit().Return(5)

	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{short, ok}, 5)
	state, _ := agg.Suggest(ctx, query("ab"))

	assert.Equal(t, []string{"abc"}, state.Items)
	short.AssertNotCalled(t, "Suggestions", mock.Anything, mock.Anything)
}

func TestSuggestionAggregator_DefaultSourceGatesOnRawInput(t *testing.T) {
	ctx := testContext()
	p := newTestParser(t)

	defaults := usecase.NewDefaultSource(
		entity.SourceSpec{Name: entity.SourceDefault, Limit: 3, MinChars: 3},
		map[string][]string{"r'x": {"r'xkcd", "r'xbox"}},
	)
	working := newStaticSource("working", map[string][]string{"x": {"never"}})
	working.minChars = 2

	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{defaults, working}, 5)
	q := p.Parse("r'x")
	require.Equal(t, "x", q.Query)

	state, _ := agg.Suggest(ctx, q)

	assert.Equal(t, []string{"r'xkcd", "r'xbox"}, state.Items)
	assert.Empty(t, working.calls, "sources without a gate text use the working query")
}

func TestSuggestionAggregator_FailingSourceDegradesToEmpty(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()

	broken := newStaticSource("broken", nil)
	broken.err = errors.New("connection refused")
	healthy := newStaticSource("healthy", map[string][]string{"go": {"golang"}})

	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{broken, healthy}, 5)
	state, applied := agg.Suggest(ctx, query("go"))

	assert.True(t, applied)
	assert.Equal(t, []string{"golang"}, state.Items)
}

func TestSuggestionAggregator_PanickingSourceDegradesToEmpty(t *testing.T) {
	ctx := testContext()

	panicking := portmocks.NewMockSuggestionSource(t)
	panicking.EXPECT().IsTooShort("go").Return(false)
	panicking.EXPECT().Name().Return(entity.SourceName("panicking"))
	panicking.EXPECT().Suggestions(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.ParsedQuery) ([]string, error) {
			panic("boom")
		})
	healthy := newStaticSource("healthy", map[string][]string{"go": {"golang"}})

	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{panicking, healthy}, 5)
	state, _ := agg.Suggest(ctx, query("go"))

	assert.Equal(t, []string{"golang"}, state.Items)
}

func TestSuggestionAggregator_SupersededCallIsDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()

	src := newStaticSource("remote", map[string][]string{
		"A": {"stale"},
		"B": {"fresh"},
	})
	src.started = make(chan string, 2)
	releaseA := src.block("A")

	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{src}, 5)

	type result struct {
		state   usecase.SuggestionState
		applied bool
	}
	done := make(chan result, 1)
	go func() {
		state, applied := agg.Suggest(ctx, query("A"))
		done <- result{state, applied}
	}()
	require.Equal(t, "A", <-src.started)

	stateB, appliedB := agg.Suggest(ctx, query("B"))
	require.Equal(t, "B", <-src.started)
	assert.True(t, appliedB)
	assert.Equal(t, []string{"fresh"}, stateB.Items)

	close(releaseA)
	resA := <-done

	assert.False(t, resA.applied)
	assert.Equal(t, []string{"fresh"}, resA.state.Items)
	assert.Equal(t, []string{"fresh"}, agg.State().Items)
}

func TestSuggestionAggregator_ClearDiscardsInFlightResults(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()

	src := newStaticSource("remote", map[string][]string{"A": {"late"}})
	src.started = make(chan string, 1)
	release := src.block("A")

	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{src}, 5)

	done := make(chan bool, 1)
	go func() {
		_, applied := agg.Suggest(ctx, query("A"))
		done <- applied
	}()
	<-src.started

	agg.Clear()
	close(release)

	assert.False(t, <-done)
	assert.Empty(t, agg.State().Items)
}

func TestSuggestionAggregator_HighlightNavigation(t *testing.T) {
	ctx := testContext()

	src := newStaticSource("s", map[string][]string{"q": {"a", "b", "c"}})
	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{src}, 5)
	agg.Suggest(ctx, query("q"))

	assert.Equal(t, "a", agg.HighlightNext().HighlightedValue())
	assert.Equal(t, "b", agg.HighlightNext().HighlightedValue())
	assert.Equal(t, "c", agg.HighlightNext().HighlightedValue())
	assert.Equal(t, -1, agg.HighlightNext().Highlighted, "moving past the end clears")

	agg.Highlight("b")
	assert.Equal(t, "a", agg.HighlightPrevious().HighlightedValue())
	assert.Equal(t, -1, agg.HighlightPrevious().Highlighted, "moving above the top clears")
	assert.Equal(t, -1, agg.HighlightPrevious().Highlighted)

	assert.Equal(t, -1, agg.Highlight("missing").Highlighted)
	agg.Highlight("c")
	assert.Equal(t, -1, agg.ClearHighlight().Highlighted)
}

func TestSuggestionAggregator_ReappliesHighlightByValue(t *testing.T) {
	ctx := testContext()

	src := newStaticSource("s", map[string][]string{
		"go":   {"golang", "gopher"},
		"gop":  {"gophers", "gopher"},
		"gopx": {"other"},
	})
	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{src}, 5)

	agg.Suggest(ctx, query("go"))
	agg.Highlight("gopher")

	state, _ := agg.Suggest(ctx, query("gop"))
	assert.Equal(t, 1, state.Highlighted)
	assert.Equal(t, "gopher", state.HighlightedValue())

	state, _ = agg.Suggest(ctx, query("gopx"))
	assert.Equal(t, -1, state.Highlighted)
}

func TestSuggestionAggregator_OnSuccessRecordsAndClears(t *testing.T) {
	ctx := testContext()

	failing := portmocks.NewMockSuggestionSource(t)
	failing.EXPECT().AddItem(mock.Anything, mock.Anything).Return(errors.New("disk full"))
	failing.EXPECT().Name().Return(entity.SourceHistory)
	failing.EXPECT().IsTooShort(mock.Anything).Return(true).Maybe()

	recording := newStaticSource("s", map[string][]string{"q": {"a"}})

	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{failing, recording}, 5)
	agg.Suggest(ctx, query("q"))

	var updates []usecase.SuggestionState
	agg.SetOnUpdate(func(s usecase.SuggestionState) { updates = append(updates, s) })

	agg.OnSuccess(ctx, query("q"))

	assert.Equal(t, []string{"q"}, recording.added)
	assert.Empty(t, agg.State().Items)
	require.Len(t, updates, 1)
	assert.Empty(t, updates[0].Items)
}

func TestSuggestionAggregator_LookupLeavesListAlone(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()

	src := newStaticSource("s", map[string][]string{"a": {"a1"}, "b": {"b1", "b2"}})
	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{src}, 5)

	agg.Suggest(ctx, query("a"))
	before := agg.State()

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			assert.Equal(t, []string{"b1", "b2"}, agg.Lookup(ctx, query("b")))
		})
	}
	wg.Wait()

	assert.Equal(t, before, agg.State())
	assert.Nil(t, agg.Lookup(ctx, nil))
}
