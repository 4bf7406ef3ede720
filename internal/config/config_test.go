package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	const content = `
output_dir = "./artifacts"
base_name = "catalog"
dialects = ["mysql", "sqlite"]
strict = true
`
	path := filepath.Join(t.TempDir(), "sqlbridge.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./artifacts", cfg.OutputDir)
	assert.Equal(t, "catalog", cfg.BaseName)
	assert.Equal(t, []string{"mysql", "sqlite"}, cfg.Dialects)
	assert.True(t, cfg.Strict)
}

func TestLoadRejectsUnknownDialect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sqlbridge.toml")
	require.NoError(t, os.WriteFile(path, []byte(`dialects = ["oracle"]`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadEmptyOutputDirFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sqlbridge.toml")
	require.NoError(t, os.WriteFile(path, []byte(`strict = true`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().OutputDir, cfg.OutputDir)
	assert.True(t, cfg.Strict)
}
