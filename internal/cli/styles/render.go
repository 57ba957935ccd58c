package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hH-13/tilde/internal/domain/entity"
)

// RenderCommands renders the help listing: one line per named command.
func (t *Theme) RenderCommands(commands []entity.Command) string {
	if len(commands) == 0 {
		return t.Subtle.Render("No named commands configured.")
	}

	keyWidth := 0
	nameWidth := 0
	for _, c := range commands {
		keyWidth = max(keyWidth, lipgloss.Width(t.CommandBadge(c)))
		nameWidth = max(nameWidth, lipgloss.Width(c.Name))
	}

	var sb strings.Builder
	for i, c := range commands {
		if i > 0 {
			sb.WriteString("\n")
		}
		badge := lipgloss.NewStyle().Width(keyWidth).Render(t.CommandBadge(c))
		name := t.Normal.Width(nameWidth).Render(c.Name)
		fmt.Fprintf(&sb, "%s %s  %s", badge, name, t.Subtle.Render(c.URL))
	}
	return sb.String()
}

// RenderQuery renders how a query resolved, one destination per line.
func (t *Theme) RenderQuery(q *entity.ParsedQuery) string {
	var sb strings.Builder
	sb.WriteString(t.KindBadge(q.Kind))
	if q.Key != "" {
		sb.WriteString(" ")
		sb.WriteString(t.MutedBadge(q.Key))
	}
	if q.IsScript() {
		sb.WriteString(" ")
		sb.WriteString(t.Subtle.Render(IconScript))
	}

	for _, redirect := range q.Redirects() {
		sb.WriteString("\n  ")
		sb.WriteString(t.Highlight.Render(IconArrow))
		sb.WriteString(" ")
		sb.WriteString(t.Normal.Render(redirect))
	}
	return sb.String()
}

// RenderHistory renders stored queries with their use counts.
func (t *Theme) RenderHistory(items []entity.HistoryItem) string {
	if len(items) == 0 {
		return t.Subtle.Render("History is empty.")
	}

	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s %s", t.CountBadge(item.Count), t.Normal.Render(item.Text))
	}
	return sb.String()
}

// RenderWarnings renders lint warnings, or nothing.
func (t *Theme) RenderWarnings(warnings []string) string {
	var sb strings.Builder
	for _, w := range warnings {
		fmt.Fprintf(&sb, "  %s %s\n", t.WarningStyle.Render(IconWarning), w)
	}
	return sb.String()
}
