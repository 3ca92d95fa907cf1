package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmelton/fuzzdex/internal/ports"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fuzzdex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_EmptyPathDefaults(t *testing.T) {
	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ports.Default(), opts)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
search:
  threshold: 0.75
  caseSensitive: true
  levenshtein: true
  stopWords: [the, and]
  splitPattern: "[^a-zA-Z0-9]+"
`)
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.75, opts.Threshold)
	assert.True(t, opts.CaseSensitive)
	assert.True(t, opts.Levenshtein)
	assert.Equal(t, []string{"the", "and"}, opts.StopWords)
	assert.Equal(t, "[^a-zA-Z0-9]+", opts.SplitPattern)
}

func TestLoad_PartialFileNormalized(t *testing.T) {
	path := writeConfig(t, "search:\n  levenshtein: true\n")
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ports.DefaultThreshold, opts.Threshold)
	assert.Equal(t, ports.DefaultSplitPattern, opts.SplitPattern)
	assert.True(t, opts.Levenshtein)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "search: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidThreshold(t *testing.T) {
	path := writeConfig(t, "search:\n  threshold: 1.5\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidPattern(t *testing.T) {
	path := writeConfig(t, "search:\n  splitPattern: \"[\"\n")
	_, err := Load(path)
	assert.Error(t, err)
}
