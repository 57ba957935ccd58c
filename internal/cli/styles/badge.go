package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/infrastructure/colors"
)

// CommandBadge renders the key of c on the command's colour. Commands
// without a colour get the muted badge.
func (t *Theme) CommandBadge(c entity.Command) string {
	if c.Color == "" {
		return t.BadgeMuted.Render(c.Key)
	}
	return t.StatusBadge(c.Key, lipgloss.Color(colors.TextOn(c.Color)), lipgloss.Color(c.Color))
}

// CountBadge renders a use count badge.
func (t *Theme) CountBadge(count int64) string {
	text := fmt.Sprintf("%d uses", count)
	if count == 1 {
		text = "1 use"
	}
	return t.BadgeMuted.Render(text)
}

// KindBadge renders how a query matched.
func (t *Theme) KindBadge(kind entity.MatchKind) string {
	return t.Badge.Render(kind.String())
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}
