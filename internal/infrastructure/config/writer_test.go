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

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"[debug]", "[history]", "[layout]", "[logging]", "[session]", "[window]", "[workspaces]",
	}, sectionHeaders(string(content)))

	var back Config
	require.NoError(t, toml.Unmarshal(content, &back))
	assert.Equal(t, *DefaultConfig(), back)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	err := WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml"))
	assert.Error(t, err)
}

func TestSortTOMLSections(t *testing.T) {
	input := `[workspaces]
path = 'workspaces.json'

[layout]
sidebar_width = 64.0

[window]
width = 1200
`
	assert.Equal(t, []string{"[layout]", "[window]", "[workspaces]"}, sectionHeaders(sortTOMLSections(input)))
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"sidebar_width"`)
	assert.Contains(t, s, `"settle_delay_ms"`)
	assert.Contains(t, s, "quadspace configuration")
}
