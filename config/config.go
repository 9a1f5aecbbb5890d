// Package config loads the viewer's TOML configuration file.
//
// A missing file yields Default. Unknown keys are rejected so typos surface as errors.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Carmen-Shannon/oxy-view/engine/view"
	"github.com/pelletier/go-toml/v2"
)

// Config is the full viewer configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	View   ViewConfig   `toml:"view"`
	Render RenderConfig `toml:"render"`
}

// WindowConfig configures the window.
type WindowConfig struct {
	Title         string `toml:"title"`
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	CaptureCursor bool   `toml:"capture_cursor"`
}

// ViewConfig holds the live-tunable view controller values.
type ViewConfig struct {
	SpeedScale    float32 `toml:"speed_scale"`
	LookSpeed     float32 `toml:"look_speed"`
	Sensitivity   float32 `toml:"sensitivity"`
	MovementSpeed float32 `toml:"movement_speed"`
	MaxDelta      float32 `toml:"max_delta"`
}

// RenderConfig configures the renderer and the profiler.
type RenderConfig struct {
	VSync      bool       `toml:"vsync"`
	Profiling  bool       `toml:"profiling"`
	MSAA       int        `toml:"msaa"`
	ClearColor [4]float64 `toml:"clear_color"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - Config: defaults for every section
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:         "Primitive Viewer",
			Width:         view.DefaultWidth,
			Height:        view.DefaultHeight,
			CaptureCursor: true,
		},
		View: ViewConfig{
			SpeedScale:    view.DefaultSpeedScale,
			LookSpeed:     view.DefaultLookSpeed,
			Sensitivity:   view.DefaultSensitivity,
			MovementSpeed: 2.5,
			MaxDelta:      view.DefaultMaxDelta,
		},
		Render: RenderConfig{
			VSync:      true,
			MSAA:       4,
			ClearColor: [4]float64{0.1, 0.1, 0.1, 1},
		},
	}
}

// Load reads and validates the file at path on top of Default.
// An empty path or a missing file returns Default.
//
// Parameters:
//   - path: the TOML file to read
//
// Returns:
//   - Config: the merged configuration
//   - error: a read, parse or validation error
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data on top of Default and validates the result.
//
// Parameters:
//   - data: the TOML document
//
// Returns:
//   - Config: the merged configuration
//   - error: a parse error, or every validation failure joined
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range field.
//
// Returns:
//   - error: nil, or the joined field errors
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field string, value any, want string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s = %v: %s", field, value, want))
		}
	}

	check(c.Window.Width > 0, "window.width", c.Window.Width, "must be positive")
	check(c.Window.Height > 0, "window.height", c.Window.Height, "must be positive")

	v := c.View
	check(v.SpeedScale >= view.MinSpeedScale && v.SpeedScale <= view.MaxSpeedScale,
		"view.speed_scale", v.SpeedScale, fmt.Sprintf("must be in [%v, %v]", view.MinSpeedScale, view.MaxSpeedScale))
	check(v.LookSpeed > 0, "view.look_speed", v.LookSpeed, "must be positive")
	check(v.Sensitivity > 0, "view.sensitivity", v.Sensitivity, "must be positive")
	check(v.MovementSpeed > 0, "view.movement_speed", v.MovementSpeed, "must be positive")
	check(v.MaxDelta > 0, "view.max_delta", v.MaxDelta, "must be positive")

	check(c.Render.MSAA == 1 || c.Render.MSAA == 4, "render.msaa", c.Render.MSAA, "must be 1 or 4")
	for i, ch := range c.Render.ClearColor {
		check(ch >= 0 && ch <= 1, fmt.Sprintf("render.clear_color[%d]", i), ch, "must be in [0, 1]")
	}

	return errors.Join(errs...)
}

// Settings converts the view section for ViewController.Apply.
//
// Returns:
//   - view.Settings: the live-tunable values
func (c Config) Settings() view.Settings {
	return view.Settings{
		SpeedScale:    c.View.SpeedScale,
		LookSpeed:     c.View.LookSpeed,
		Sensitivity:   c.View.Sensitivity,
		MovementSpeed: c.View.MovementSpeed,
		MaxDelta:      c.View.MaxDelta,
	}
}
