package styles_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hH-13/tilde/internal/cli/styles"
	"github.com/hH-13/tilde/internal/domain/entity"
)

func TestMatchSpan(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		start int
		end   int
		ok    bool
	}{
		{"prefix", "golang", "go", 0, 2, true},
		{"case insensitive", "r/GoLang", "golang", 2, 8, true},
		{"first occurrence", "go go", "go", 0, 2, true},
		{"middle", "learn go fast", "GO", 6, 8, true},
		{"multibyte", "straße kaufen", "SSE", 0, 0, false},
		{"unicode fold", "Ärger", "är", 0, 3, true},
		{"no match", "reddit", "go", 0, 0, false},
		{"empty query", "reddit", "", 0, 0, false},
		{"query longer than text", "go", "golang", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := styles.MatchSpan(tt.text, tt.query)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.start, start)
				assert.Equal(t, tt.end, end)
			}
		})
	}
}

func TestHighlightMatch(t *testing.T) {
	plain := lipgloss.NewStyle()
	mark := lipgloss.NewStyle()

	// Unstyled rendering keeps the text intact.
	assert.Equal(t, "r/golang", styles.HighlightMatch("r/golang", "GO", plain, mark))
	assert.Equal(t, "reddit", styles.HighlightMatch("reddit", "go", plain, mark))
}

func TestRenderCommands(t *testing.T) {
	theme := styles.NewTheme()

	out := theme.RenderCommands([]entity.Command{
		{Key: "g", Name: "GitHub", URL: "https://github.com", Color: "#24292e"},
		{Key: "yt", Name: "YouTube", URL: "https://youtube.com"},
	})
	require.Contains(t, out, "GitHub")
	require.Contains(t, out, "YouTube")
	require.Contains(t, out, "https://youtube.com")

	assert.Contains(t, theme.RenderCommands(nil), "No named commands")
}

func TestRenderQuery(t *testing.T) {
	theme := styles.NewTheme()

	out := theme.RenderQuery(&entity.ParsedQuery{
		Raw:  "both",
		Key:  "both",
		Kind: entity.MatchExactKey,
		Children: []*entity.ParsedQuery{
			{Redirect: "https://a.example"},
			{Redirect: "https://b.example"},
		},
	})
	assert.Contains(t, out, "exact_key")
	assert.Contains(t, out, "https://a.example")
	assert.Contains(t, out, "https://b.example")
}

func TestRenderHistory(t *testing.T) {
	theme := styles.NewTheme()

	out := theme.RenderHistory([]entity.HistoryItem{{Text: "golang", Count: 3}, {Text: "rust", Count: 1}})
	assert.Contains(t, out, "3 uses")
	assert.Contains(t, out, "1 use")
	assert.Contains(t, out, "golang")

	assert.Contains(t, theme.RenderHistory(nil), "empty")
}
