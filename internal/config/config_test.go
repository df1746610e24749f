package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NESTLIST_SECRET_KEY", "test-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, DefaultSessionTTLHours, cfg.SessionTTLHours)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("NESTLIST_SECRET_KEY", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nestlist.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr = ":9090"
db_path = "/tmp/custom.db"
secret_key = "file-secret"
session_ttl_hours = 48
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, "file-secret", cfg.SecretKey)
	assert.Equal(t, 48, cfg.SessionTTLHours)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nestlist.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr = ":9090"
secret_key = "file-secret"
`), 0644))

	t.Setenv("NESTLIST_ADDR", ":7070")
	t.Setenv("NESTLIST_SECRET_KEY", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "env-secret", cfg.SecretKey)
}

func TestMissingFileIsSkipped(t *testing.T) {
	t.Setenv("NESTLIST_SECRET_KEY", "test-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
}
