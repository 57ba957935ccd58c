package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), configName)

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.True(t, strings.HasPrefix(text, "# tilde configuration"))
	assert.Contains(t, text, "[[commands]]")
	assert.Contains(t, text, "[[suggestions.sources]]")

	// Sections follow the Config field order.
	query := strings.Index(text, "[query]")
	commands := strings.Index(text, "[[commands]]")
	logging := strings.Index(text, "[logging]")
	assert.Less(t, query, commands)
	assert.Less(t, commands, logging)

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, DefaultConfig().Commands, decoded.Commands)
	assert.Equal(t, DefaultConfig().Scripts, decoded.Scripts)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}

func TestWriteConfigOrdered_Errors(t *testing.T) {
	assert.ErrorContains(t, WriteConfigOrdered(nil, "unused"), "config is nil")

	missingDir := filepath.Join(t.TempDir(), "missing", configName)
	assert.Error(t, WriteConfigOrdered(DefaultConfig(), missingDir))
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"search_delimiter"`)
	assert.Contains(t, text, `"commands"`)
	assert.Contains(t, text, "tilde configuration")
}
