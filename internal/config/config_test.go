package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Output.Dir)
	assert.False(t, cfg.Discovery.Recursive)
	assert.Equal(t, 4, cfg.Discovery.Jobs)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultConfigName))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigName)
	content := `
[output]
dir = "docs/api"

[discovery]
recursive = true
jobs = 8
skip_dirs = ["third_party"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "docs/api", cfg.Output.Dir)
	assert.True(t, cfg.Discovery.Recursive)
	assert.Equal(t, 8, cfg.Discovery.Jobs)
	assert.Equal(t, []string{"third_party"}, cfg.Discovery.SkipDirs)
}

func TestLoadInvalidJobsFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigName)
	require.NoError(t, os.WriteFile(path, []byte("[discovery]\njobs = -1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Discovery.Jobs)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigName)
	require.NoError(t, os.WriteFile(path, []byte("not [valid\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
