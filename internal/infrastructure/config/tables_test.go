package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hH-13/tilde/internal/domain/entity"
)

func TestConfig_CommandTable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance = AppearanceConfig{Saturation: 1, Lightness: 0.5}
	cfg.Commands = []CommandConfig{
		{Key: "*", URL: "https://www.google.com", Search: "/search?q={}", Hues: []float64{120}},
		{Key: "a", Name: "Alpha", URL: "https://a.example", Hues: []float64{0, 240}},
		{Key: "b", Name: "Beta", URL: "https://b.example", Hues: []float64{240}, Color: "#123456"},
		{Key: "c", Name: "Gamma", URL: "https://c.example"},
	}

	table := cfg.CommandTable()
	require.Len(t, table, 4)

	assert.Empty(t, table[0].Color, "unnamed commands keep an empty colour")

	assert.Equal(t, "#ff0000", table[1].Color)
	assert.Equal(t, []string{"#ff0000", "#0000ff"}, table[1].Gradient)

	assert.Equal(t, "#123456", table[2].Color)
	assert.Nil(t, table[2].Gradient)

	assert.Equal(t, "#808080", table[3].Color)
}

func TestConfig_ScriptTable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scripts = map[string][]string{
		"z": {"g"},
		"a": {"r", "*"},
	}

	assert.Equal(t, []entity.Script{
		{Key: "a", CommandKeys: []string{"r", "*"}},
		{Key: "z", CommandKeys: []string{"g"}},
	}, cfg.ScriptTable())
}

func TestConfig_SourceSpecs(t *testing.T) {
	specs := DefaultConfig().SourceSpecs()

	assert.Equal(t, []entity.SourceSpec{
		{Name: entity.SourceDefault, Limit: 4},
		{Name: entity.SourceHistory, Limit: 4, MinChars: 1},
		{Name: entity.SourceDuckDuckGo, Limit: 6, MinChars: 1},
	}, specs)
}
