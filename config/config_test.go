package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/engine/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, view.DefaultSpeedScale, cfg.View.SpeedScale)
	assert.Equal(t, view.DefaultLookSpeed, cfg.View.LookSpeed)
	assert.Equal(t, view.DefaultSensitivity, cfg.View.Sensitivity)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
title = "lab"

[view]
speed_scale = 2.5
sensitivity = 0.2

[render]
vsync = false
profiling = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lab", cfg.Window.Title)
	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, float32(2.5), cfg.View.SpeedScale)
	assert.InDelta(t, 0.2, cfg.View.Sensitivity, 1e-7)
	assert.Equal(t, view.DefaultLookSpeed, cfg.View.LookSpeed)
	assert.False(t, cfg.Render.VSync)
	assert.True(t, cfg.Render.Profiling)
	assert.Equal(t, 4, cfg.Render.MSAA)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "malformed",
			input: "[view\nspeed_scale = 1",
		},
		{
			name:  "unknown key",
			input: "[view]\nspeedscale = 1\n",
			want:  []string{"speedscale"},
		},
		{
			name:  "speed scale out of range",
			input: "[view]\nspeed_scale = 50.0\n",
			want:  []string{"view.speed_scale"},
		},
		{
			name:  "several fields",
			input: "[window]\nwidth = 0\n[render]\nmsaa = 2\nclear_color = [0.0, 0.0, 2.0, 1.0]\n",
			want:  []string{"window.width", "render.msaa", "render.clear_color[2]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

func TestLoadWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[view]\nlook_speed = -1.0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "view.look_speed")
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.View.SpeedScale = 7
	cfg.View.MovementSpeed = 3

	s := cfg.Settings()
	assert.Equal(t, view.Settings{
		SpeedScale:    7,
		LookSpeed:     view.DefaultLookSpeed,
		Sensitivity:   view.DefaultSensitivity,
		MovementSpeed: 3,
		MaxDelta:      view.DefaultMaxDelta,
	}, s)
}
