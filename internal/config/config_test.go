package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coords.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: DEBUG
storage:
  chunk_dir: /tmp/chunks
  compress: false
worldgen:
  seed: 42
window:
  corner_x: -5
  corner_y: 7
  size: 9
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "/tmp/chunks", cfg.Storage.ChunkDir)
	assert.False(t, cfg.Storage.Compress)
	assert.Equal(t, int64(42), cfg.Worldgen.GetSeed())
	assert.Equal(t, int32(3), cfg.Worldgen.Octaves, "не заданное поле остается по умолчанию")
	assert.Equal(t, WindowConfig{CornerX: -5, CornerY: 7, Size: 9}, cfg.Window)
}

func TestLoadWithoutPath(t *testing.T) {
	t.Setenv("COORDS_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COORDS_CONFIG", writeConfig(t, "window:\n  size: 5\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Window.Size)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "window: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "window:\n  size: 0\n"))
	assert.ErrorContains(t, err, "window.size")
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("MMO_REDIS_ADDR", "redis:6379")
	t.Setenv("MMO_MARIA_DSN", "")
	t.Setenv("MMO_WORLD_SEED", "77")

	s := StorageConfig{}
	assert.Equal(t, "redis:6379", s.GetRedisAddr())
	assert.Equal(t, "", s.GetMariaDSN())

	s.RedisAddr = "localhost:6379"
	assert.Equal(t, "localhost:6379", s.GetRedisAddr(), "значение из конфига важнее окружения")

	w := WorldgenConfig{}
	assert.Equal(t, int64(77), w.GetSeed())
}
