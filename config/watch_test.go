package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDeliversValidReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.toml")
	require.NoError(t, os.WriteFile(path, []byte("[view]\nspeed_scale = 1.0\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan Config, 16)
	require.NoError(t, Watch(ctx, path, func(c Config) { reloads <- c }))

	// invalid content is skipped
	require.NoError(t, os.WriteFile(path, []byte("[view]\nspeed_scale = 99.0\n"), 0o644))
	// unrelated files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("[view]\nspeed_scale = 3.0\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-reloads:
			assert.NotEqual(t, float32(99), c.View.SpeedScale)
			if c.View.SpeedScale == 3 {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "viewer.toml"), func(Config) {})
	assert.Error(t, err)
}
