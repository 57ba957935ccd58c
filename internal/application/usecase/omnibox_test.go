package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hH-13/tilde/internal/application/port"
	portmocks "github.com/hH-13/tilde/internal/application/port/mocks"
	"github.com/hH-13/tilde/internal/application/usecase"
	"github.com/hH-13/tilde/internal/domain/entity"
)

func newTestOmnibox(t *testing.T, nav port.Navigator, opts usecase.OmniboxOptions) (*usecase.OmniboxUseCase, *staticSource) {
	t.Helper()
	src := newStaticSource("s", map[string][]string{"golang": {"golang tips"}})
	agg := usecase.NewSuggestionAggregator([]port.SuggestionSource{src}, 5)
	return usecase.NewOmniboxUseCase(newTestParser(t), agg, nav, opts), src
}

func TestOmnibox_SubmitSingleHonoursNewTab(t *testing.T) {
	ctx := testContext()

	nav := portmocks.NewMockNavigator(t)
	nav.EXPECT().Open(mock.Anything, "https://www.reddit.com/search?q=golang", false).Return(nil)

	uc, src := newTestOmnibox(t, nav, usecase.OmniboxOptions{HelpKey: "?"})

	out, err := uc.Submit(ctx, "r'golang")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.reddit.com/search?q=golang"}, out.Opened)
	assert.False(t, out.NewTab)
	assert.Equal(t, []string{"golang"}, src.added)
}

func TestOmnibox_SubmitScriptForcesNewTab(t *testing.T) {
	ctx := testContext()

	nav := portmocks.NewMockNavigator(t)
	nav.EXPECT().Open(mock.Anything, "https://www.bing.com/search?q=cats", true).Return(nil).Once()
	nav.EXPECT().Open(mock.Anything, "https://duckduckgo.com/?q=cats", true).Return(nil).Once()
	nav.EXPECT().Open(mock.Anything, "https://www.google.com/search?q=cats", true).Return(nil).Once()

	uc, _ := newTestOmnibox(t, nav, usecase.OmniboxOptions{NewTab: false})

	out, err := uc.Submit(ctx, "q'cats")
	require.NoError(t, err)
	assert.True(t, out.NewTab)
	assert.Len(t, out.Opened, 3)
}

func TestOmnibox_SubmitEmpty(t *testing.T) {
	ctx := testContext()
	nav := portmocks.NewMockNavigator(t)
	uc, _ := newTestOmnibox(t, nav, usecase.OmniboxOptions{})

	_, err := uc.Submit(ctx, "  ")
	assert.ErrorIs(t, err, usecase.ErrNothingToOpen)
}

func TestOmnibox_SubmitNavigationFailureSkipsHistory(t *testing.T) {
	ctx := testContext()

	nav := portmocks.NewMockNavigator(t)
	nav.EXPECT().Open(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("no opener"))

	uc, src := newTestOmnibox(t, nav, usecase.OmniboxOptions{})

	_, err := uc.Submit(ctx, "golang")
	assert.ErrorContains(t, err, "no opener")
	assert.Empty(t, src.added)
}

func TestOmnibox_InputHelpKey(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestOmnibox(t, nil, usecase.OmniboxOptions{HelpKey: "?"})

	out, err := uc.Input(ctx, "?")
	require.NoError(t, err)
	assert.True(t, out.ToggleHelp)
	assert.True(t, out.ClearInput)
	assert.Equal(t, entity.MatchNone, out.Query.Kind)
}

func TestOmnibox_InputInstantRedirect(t *testing.T) {
	ctx := testContext()

	nav := portmocks.NewMockNavigator(t)
	nav.EXPECT().Open(mock.Anything, "https://github.com/", false).Return(nil).Once()

	uc, _ := newTestOmnibox(t, nav, usecase.OmniboxOptions{InstantRedirect: true})

	out, err := uc.Input(ctx, "g")
	require.NoError(t, err)
	require.NotNil(t, out.Submitted)
	assert.True(t, out.ClearInput)

	out, err = uc.Input(ctx, " g")
	require.NoError(t, err)
	assert.Nil(t, out.Submitted, "a leading space opts out")

	out, err = uc.Input(ctx, "gi")
	require.NoError(t, err)
	assert.Nil(t, out.Submitted)
}

func TestOmnibox_InputThenSuggest(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestOmnibox(t, nil, usecase.OmniboxOptions{})

	out, err := uc.Input(ctx, "golang")
	require.NoError(t, err)
	assert.Nil(t, out.Submitted)

	state, applied := uc.Suggest(ctx, out.Query)
	assert.True(t, applied)
	assert.Equal(t, []string{"golang tips"}, state.Items)

	out, err = uc.Input(ctx, "")
	require.NoError(t, err)
	assert.True(t, out.ClearInput)
	assert.Empty(t, uc.Suggester().State().Items)
}

func TestOmnibox_ResolveRecordsWithoutNavigator(t *testing.T) {
	ctx := testContext()
	uc, src := newTestOmnibox(t, nil, usecase.OmniboxOptions{})

	q, err := uc.Resolve(ctx, "r/r/golang")
	require.NoError(t, err)
	assert.Equal(t, "https://www.reddit.com/r/golang", q.Redirect)
	assert.Equal(t, []string{"r/r/golang"}, src.added)

	_, err = uc.Submit(ctx, "g")
	assert.ErrorIs(t, err, usecase.ErrNoNavigator)
}
