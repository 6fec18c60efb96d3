package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sequences.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	config, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigOverridesOnlyPresentKeys(t *testing.T) {
	path := writeConfig(t, "count: 4\nerase_indices: [0]\ndebug: true\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, config.Count)
	assert.Equal(t, []int{0}, config.EraseIndices)
	assert.True(t, config.Debug)
	assert.Equal(t, 10, config.FrontValue)
	assert.Equal(t, []int{1, 2, 3, 4}, config.MoveSample)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "count: -1\n"))
	assert.ErrorContains(t, err, "count must not be negative")

	_, err = LoadConfig(writeConfig(t, "move_sample: []\n"))
	assert.ErrorContains(t, err, "move_sample")

	_, err = LoadConfig(writeConfig(t, "count: [\n"))
	assert.Error(t, err)
}
