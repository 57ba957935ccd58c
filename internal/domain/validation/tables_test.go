package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hH-13/tilde/internal/domain/entity"
)

func validCommands() []entity.Command {
	return []entity.Command{
		{Key: "*", URL: "https://www.google.com", Search: "/search?q={}"},
		{Key: "g", Name: "GitHub", URL: "https://github.com", Search: "/search?q={}"},
		{Key: "r", Name: "Reddit", URL: "https://www.reddit.com", Search: "/search?q={}", Color: "#ff4500"},
	}
}

func TestValidateTables_Valid(t *testing.T) {
	scripts := []entity.Script{{Key: "q", CommandKeys: []string{"g", "r", "*"}}}
	assert.NoError(t, ValidateTables(validCommands(), scripts, "'", "/"))
}

func TestValidateCommands(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func([]entity.Command) []entity.Command
		sentinel error
	}{
		{
			name: "empty key",
			mutate: func(c []entity.Command) []entity.Command {
				return append(c, entity.Command{Key: "", URL: "https://x.com"})
			},
			sentinel: ErrEmptyKey,
		},
		{
			name: "duplicate key",
			mutate: func(c []entity.Command) []entity.Command {
				return append(c, entity.Command{Key: "g", URL: "https://gitlab.com"})
			},
			sentinel: ErrDuplicateKey,
		},
		{
			name:     "missing wildcard",
			mutate:   func(c []entity.Command) []entity.Command { return c[1:] },
			sentinel: ErrMissingWildcard,
		},
		{
			name: "two wildcards",
			mutate: func(c []entity.Command) []entity.Command {
				return append(c, entity.Command{Key: "*", URL: "https://duckduckgo.com"})
			},
			sentinel: ErrDuplicateWildcard,
		},
		{
			name: "relative url",
			mutate: func(c []entity.Command) []entity.Command {
				c[1].URL = "github.com"
				return c
			},
			sentinel: ErrInvalidURL,
		},
		{
			name: "bad color",
			mutate: func(c []entity.Command) []entity.Command {
				c[1].Color = "red"
				return c
			},
			sentinel: ErrInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommands(tt.mutate(validCommands()))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorIs(t, err, tt.sentinel)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Contains(t, cfgErr.Error(), "config validation failed:")
		})
	}
}

func TestValidateScripts(t *testing.T) {
	commands := validCommands()

	t.Run("unknown command", func(t *testing.T) {
		err := ValidateScripts([]entity.Script{{Key: "q", CommandKeys: []string{"g", "nope"}}}, commands)
		assert.ErrorIs(t, err, ErrUnknownScriptCommand)
	})

	t.Run("nested scripts allowed", func(t *testing.T) {
		scripts := []entity.Script{
			{Key: "a", CommandKeys: []string{"g"}},
			{Key: "b", CommandKeys: []string{"a", "r"}},
		}
		assert.NoError(t, ValidateScripts(scripts, commands))
	})

	t.Run("self reference", func(t *testing.T) {
		err := ValidateScripts([]entity.Script{{Key: "a", CommandKeys: []string{"a"}}}, commands)
		assert.ErrorIs(t, err, ErrScriptCycle)
	})

	t.Run("indirect cycle", func(t *testing.T) {
		scripts := []entity.Script{
			{Key: "a", CommandKeys: []string{"g", "b"}},
			{Key: "b", CommandKeys: []string{"c"}},
			{Key: "c", CommandKeys: []string{"a"}},
		}
		err := ValidateScripts(scripts, commands)
		require.ErrorIs(t, err, ErrScriptCycle)
		assert.Contains(t, err.Error(), "a -> b -> c -> a")
	})

	t.Run("script shadowing a command still forms a cycle", func(t *testing.T) {
		err := ValidateScripts([]entity.Script{{Key: "g", CommandKeys: []string{"g"}}}, commands)
		assert.ErrorIs(t, err, ErrScriptCycle)
	})

	t.Run("empty script", func(t *testing.T) {
		scripts := []entity.Script{
			{Key: "a", CommandKeys: []string{"g"}},
			{Key: "none"},
			{Key: "blank", CommandKeys: []string{}},
		}
		err := ValidateScripts(scripts, commands)
		require.ErrorIs(t, err, ErrEmptyScript)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), `"none"`)
		assert.Contains(t, err.Error(), `"blank"`)
	})

	t.Run("duplicate script key", func(t *testing.T) {
		scripts := []entity.Script{
			{Key: "a", CommandKeys: []string{"g"}},
			{Key: "a", CommandKeys: []string{"r"}},
		}
		assert.ErrorIs(t, ValidateScripts(scripts, commands), ErrDuplicateKey)
	})
}

func TestValidateDelimiters(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		path    string
		wantErr bool
	}{
		{"defaults", "'", "/", false},
		{"unicode", "→", "/", false},
		{"empty search", "", "/", true},
		{"two characters", "''", "/", true},
		{"whitespace", " ", "/", true},
		{"same delimiter", "/", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDelimiters(tt.search, tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDelimiter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLint(t *testing.T) {
	commands := append(validCommands(), entity.Command{Key: "a/b", URL: "https://example.com"})
	scripts := []entity.Script{
		{Key: "g", CommandKeys: []string{"r"}},
	}

	warnings := Lint(commands, scripts, "'", "/")

	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], `"a/b"`)
	assert.Contains(t, warnings[1], `script "g" shadows`)
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#a1B2c3"))
	assert.False(t, IsHexColor("a1b2c3"))
	assert.False(t, IsHexColor("#abc"))
}
