package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hH-13/tilde/internal/application/usecase"
	"github.com/hH-13/tilde/internal/cli/styles"
	"github.com/hH-13/tilde/internal/domain/entity"
)

// OmniboxModel is the Bubble Tea model for the interactive omnibox.
type OmniboxModel struct {
	// UI components
	input textinput.Model
	help  help.Model
	keys  styles.OmniboxKeyMap

	// State
	query       *entity.ParsedQuery
	suggestions usecase.SuggestionState
	showHelp    bool
	opened      []string
	width       int
	err         error

	// Dependencies
	ctx     context.Context
	omnibox *usecase.OmniboxUseCase
	theme   *styles.Theme
}

// NewOmniboxModel creates a new omnibox model.
func NewOmniboxModel(ctx context.Context, theme *styles.Theme, omnibox *usecase.OmniboxUseCase) OmniboxModel {
	input := styles.NewOmniboxInput(theme, omnibox.Options().HelpKey)
	input.Focus()

	return OmniboxModel{
		input:       input,
		help:        styles.NewStyledHelp(theme),
		keys:        styles.DefaultOmniboxKeyMap(),
		query:       omnibox.Parse(""),
		suggestions: omnibox.Suggester().State(),
		ctx:         ctx,
		omnibox:     omnibox,
		theme:       theme,
		width:       80,
	}
}

// suggestionsMsg carries the result of an asynchronous Suggest call.
type suggestionsMsg struct {
	state   usecase.SuggestionState
	applied bool
}

// submittedMsg is sent once a submission opened its destinations.
type submittedMsg struct {
	out *usecase.SubmitOutput
	err error
}

// ReloadedMsg swaps in an omnibox built from a reloaded configuration.
type ReloadedMsg struct {
	Omnibox *usecase.OmniboxUseCase
}

// Init implements tea.Model.
func (m OmniboxModel) Init() tea.Cmd {
	return textinput.Blink
}

// suggest fetches suggestions for q off the UI goroutine. Results of
// superseded calls come back with applied=false and are dropped.
func (m OmniboxModel) suggest(q *entity.ParsedQuery) tea.Cmd {
	return func() tea.Msg {
		state, applied := m.omnibox.Suggest(m.ctx, q)
		return suggestionsMsg{state: state, applied: applied}
	}
}

func (m OmniboxModel) submit(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.omnibox.Submit(m.ctx, text)
		return submittedMsg{out: out, err: err}
	}
}

// Update implements tea.Model.
func (m OmniboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case suggestionsMsg:
		if msg.applied {
			m.suggestions = msg.state
		}
		return m, nil

	case ReloadedMsg:
		if msg.Omnibox == nil {
			return m, nil
		}
		m.omnibox = msg.Omnibox
		m.query = m.omnibox.Parse(m.input.Value())
		m.suggestions = m.omnibox.Suggester().State()
		if m.query.IsEmpty() {
			return m, nil
		}
		return m, m.suggest(m.query)

	case submittedMsg:
		if msg.out != nil {
			m.opened = append(m.opened, msg.out.Opened...)
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m OmniboxModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.suggestions = m.omnibox.Suggester().HighlightNext()
		return m, nil

	case key.Matches(msg, m.keys.Previous):
		m.suggestions = m.omnibox.Suggester().HighlightPrevious()
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		value := m.suggestions.HighlightedValue()
		if value == "" {
			return m, nil
		}
		m.input.SetValue(value)
		m.input.CursorEnd()
		return m.inputChanged()

	case key.Matches(msg, m.keys.Submit):
		text := m.suggestions.HighlightedValue()
		if text == "" {
			text = m.input.Value()
		}
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.err = nil
		return m, m.submit(text)
	}

	before := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, inputCmd
	}

	next, cmd := m.inputChanged()
	return next, tea.Batch(inputCmd, cmd)
}

// inputChanged runs the omnibox input rules on the current text.
func (m OmniboxModel) inputChanged() (tea.Model, tea.Cmd) {
	m.err = nil
	out, err := m.omnibox.Input(m.ctx, m.input.Value())
	if out != nil {
		m.query = out.Query
	}
	if err != nil {
		m.err = err
		return m, nil
	}

	if out.ClearInput {
		m.input.SetValue("")
		m.suggestions = m.omnibox.Suggester().State()
	}
	if out.ToggleHelp {
		m.showHelp = !m.showHelp
	}
	if out.Submitted != nil {
		m.opened = append(m.opened, out.Submitted.Opened...)
		return m, tea.Quit
	}
	if out.ClearInput {
		return m, nil
	}
	return m, m.suggest(out.Query)
}

// View implements tea.Model.
func (m OmniboxModel) View() string {
	t := m.theme

	border := t.InputFocused
	if m.query != nil {
		border = t.InputBorder(m.query.Color)
	}
	inputWidth := max(m.width-4, 20)
	sections := []string{border.Width(inputWidth).Render(m.input.View())}

	if m.query != nil && !m.query.IsEmpty() {
		sections = append(sections, t.RenderQuery(m.query))
	}

	if len(m.suggestions.Items) > 0 {
		sections = append(sections, "", m.renderSuggestions())
	}

	if m.showHelp {
		sections = append(sections, "", t.RenderCommands(m.omnibox.Commands()))
	}

	if m.err != nil {
		sections = append(sections, "", t.ErrorStyle.Render(styles.IconX+" "+m.err.Error()))
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m OmniboxModel) renderSuggestions() string {
	t := m.theme
	needle := ""
	if m.query != nil {
		needle = m.query.Query
	}

	lines := make([]string, 0, len(m.suggestions.Items))
	for i, item := range m.suggestions.Items {
		if i == m.suggestions.Highlighted {
			lines = append(lines, t.SuggestionSelected.Render(styles.IconCursor+" "+item))
			continue
		}
		row := styles.HighlightMatch(item, needle, t.Normal, t.Match)
		lines = append(lines, t.Suggestion.Render("  "+row))
	}
	return strings.Join(lines, "\n")
}

// Opened returns the destinations opened before the program quit.
func (m OmniboxModel) Opened() []string {
	return m.opened
}

// Err returns the last submission error.
func (m OmniboxModel) Err() error {
	return m.err
}

// Ensure interface compliance.
var _ tea.Model = (*OmniboxModel)(nil)
