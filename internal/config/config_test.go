package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
base_url = "https://proxy.internal"
include_usage = true

[search]
max_results = 10
search_depth = "basic"

[crawl]
full_schema = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.internal", cfg.API.BaseURL)
	assert.True(t, cfg.API.IncludeUsage)
	assert.Equal(t, 10, cfg.Search.MaxResults)
	assert.Equal(t, "basic", cfg.Search.SearchDepth)
	assert.True(t, cfg.Crawl.FullSchema)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().History.Path, cfg.History.Path)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.API.BaseURL = "https://proxy.internal"
	cfg.Search.IncludeDomains = []string{"example.com"}
	cfg.Research.Model = "pro"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
