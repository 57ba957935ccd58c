package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "~ "
	return ti
}

// NewOmniboxInput creates the omnibox query field. helpKey is advertised
// in the placeholder when set.
func NewOmniboxInput(theme *Theme, helpKey string) textinput.Model {
	placeholder := "Type a command, a search or a URL..."
	if helpKey != "" {
		placeholder = "Type " + helpKey + " for commands, or a search or a URL..."
	}
	ti := NewStyledInput(theme, placeholder)
	ti.CharLimit = 2048
	return ti
}
