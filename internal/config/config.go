// Package config loads viewer settings and table data from TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/elektrokombinacija/tableview/internal/core"
	"github.com/elektrokombinacija/tableview/internal/vis/draw"
	"github.com/elektrokombinacija/tableview/internal/vis/interact"
	"github.com/elektrokombinacija/tableview/internal/vis/view"
)

const defaultConfigPath = "~/.config/tableview/config.toml"

// Config captures the tunable viewer settings.
type Config struct {
	Layout  LayoutConfig  `toml:"layout"`
	Physics PhysicsConfig `toml:"physics"`
	Gesture GestureConfig `toml:"gesture"`
	Style   StyleConfig   `toml:"style"`
}

// LayoutConfig places the floating rows.
type LayoutConfig struct {
	FloatingShift int     `toml:"floating_shift"`
	FloatingInset float64 `toml:"floating_inset"`
	// Period -> id offset. TOML keys are strings.
	FloatingOffsets map[string]int `toml:"floating_offsets"`
}

// PhysicsConfig tunes zoom limits and fling.
type PhysicsConfig struct {
	Friction        float64 `toml:"friction"`
	SpringStiffness float64 `toml:"spring_stiffness"`
	SpringDamping   float64 `toml:"spring_damping"`
	ZoomMax         float64 `toml:"zoom_max"`
}

// GestureConfig tunes gesture thresholds.
type GestureConfig struct {
	TouchSlop     float64 `toml:"touch_slop"`
	LongPressMs   int     `toml:"long_press_ms"`
	DoubleTapMs   int     `toml:"double_tap_ms"`
	DoubleTapSlop float64 `toml:"double_tap_slop"`
	ZoomBase      float64 `toml:"zoom_base"`
	DoubleTapStep float64 `toml:"double_tap_step"`
	ScrollFactor  float64 `toml:"scroll_factor"`
}

// StyleConfig holds colors and text.
type StyleConfig struct {
	Background string  `toml:"background"`
	Foreground string  `toml:"foreground"`
	Selection  string  `toml:"selection"`
	Padding    float64 `toml:"padding"`
	Title      string  `toml:"title"`
}

// Default returns the built-in settings.
func Default() Config {
	layout := core.DefaultLayoutConfig()
	offsets := make(map[string]int, len(layout.FloatingOffsets))
	for period, off := range layout.FloatingOffsets {
		offsets[strconv.Itoa(period)] = off
	}
	glide := interact.DefaultGlide()
	gesture := interact.DefaultGestureConfig()
	style := draw.DefaultStyle()

	return Config{
		Layout: LayoutConfig{
			FloatingShift:   layout.FloatingShift,
			FloatingInset:   layout.FloatingInset,
			FloatingOffsets: offsets,
		},
		Physics: PhysicsConfig{
			Friction:        glide.Friction,
			SpringStiffness: glide.Stiffness,
			SpringDamping:   glide.Damping,
			ZoomMax:         interact.DefaultZoomMax,
		},
		Gesture: GestureConfig{
			TouchSlop:     float64(gesture.TouchSlop),
			LongPressMs:   int(gesture.LongPress / time.Millisecond),
			DoubleTapMs:   int(gesture.DoubleTapTimeout / time.Millisecond),
			DoubleTapSlop: float64(gesture.DoubleTapSlop),
			ZoomBase:      gesture.ZoomBase,
			DoubleTapStep: gesture.DoubleTapStep,
			ScrollFactor:  gesture.ScrollFactor,
		},
		Style: StyleConfig{
			Background: draw.Hex(style.Background),
			Foreground: draw.Hex(style.Foreground),
			Selection:  draw.Hex(style.Selection),
			Padding:    float64(style.Padding),
		},
	}
}

// Load reads the config at path, or the default location when path is empty.
// A missing file yields the defaults; keys not known to Config are an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes config TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// Offsets replace the defaults wholesale instead of merging.
	cfg.Layout.FloatingOffsets = nil

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, len(strict.Errors))
			for i, e := range strict.Errors {
				keys[i] = strings.Join(e.Key(), ".")
			}
			return Config{}, fmt.Errorf("parse config: unknown keys %s", strings.Join(keys, ", "))
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Layout.FloatingOffsets == nil {
		cfg.Layout.FloatingOffsets = Default().Layout.FloatingOffsets
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and colors.
func (c Config) Validate() error {
	if c.Layout.FloatingShift < 0 {
		return fmt.Errorf("layout.floating_shift must not be negative, got %d", c.Layout.FloatingShift)
	}
	if c.Layout.FloatingInset < 0 {
		return fmt.Errorf("layout.floating_inset must not be negative, got %v", c.Layout.FloatingInset)
	}
	if _, err := c.floatingOffsets(); err != nil {
		return err
	}
	if c.Physics.Friction <= 0 {
		return fmt.Errorf("physics.friction must be positive, got %v", c.Physics.Friction)
	}
	if c.Physics.SpringStiffness < 0 || c.Physics.SpringDamping < 0 {
		return fmt.Errorf("physics spring parameters must not be negative")
	}
	if c.Physics.ZoomMax < interact.ZoomMin {
		return fmt.Errorf("physics.zoom_max must be at least %v, got %v", interact.ZoomMin, c.Physics.ZoomMax)
	}
	if c.Gesture.TouchSlop < 0 || c.Gesture.DoubleTapSlop < 0 {
		return fmt.Errorf("gesture slops must not be negative")
	}
	if c.Gesture.LongPressMs <= 0 {
		return fmt.Errorf("gesture.long_press_ms must be positive, got %d", c.Gesture.LongPressMs)
	}
	if c.Gesture.DoubleTapMs < 0 {
		return fmt.Errorf("gesture.double_tap_ms must not be negative, got %d", c.Gesture.DoubleTapMs)
	}
	if c.Gesture.ZoomBase <= 1 || c.Gesture.DoubleTapStep <= 1 || c.Gesture.ScrollFactor <= 1 {
		return fmt.Errorf("gesture zoom_base, double_tap_step and scroll_factor must exceed 1")
	}
	if c.Style.Padding < 0 {
		return fmt.Errorf("style.padding must not be negative, got %v", c.Style.Padding)
	}
	colors := []struct{ name, value string }{
		{"background", c.Style.Background},
		{"foreground", c.Style.Foreground},
		{"selection", c.Style.Selection},
	}
	for _, col := range colors {
		if _, err := ParseColor(col.value); err != nil {
			return fmt.Errorf("style.%s: %w", col.name, err)
		}
	}
	return nil
}

// ViewOptions converts the settings into engine options. The config must be valid.
func (c Config) ViewOptions() view.Options {
	opts := view.DefaultOptions()

	offsets, _ := c.floatingOffsets()
	opts.Layout = core.LayoutConfig{
		FloatingShift:   c.Layout.FloatingShift,
		FloatingInset:   c.Layout.FloatingInset,
		FloatingOffsets: offsets,
	}
	opts.Controller = interact.ControllerConfig{
		ZoomMax: c.Physics.ZoomMax,
		Glide: interact.Glide{
			Friction:  c.Physics.Friction,
			Stiffness: c.Physics.SpringStiffness,
			Damping:   c.Physics.SpringDamping,
		},
	}
	opts.Gesture = interact.GestureConfig{
		TouchSlop:        float32(c.Gesture.TouchSlop),
		LongPress:        time.Duration(c.Gesture.LongPressMs) * time.Millisecond,
		DoubleTapTimeout: time.Duration(c.Gesture.DoubleTapMs) * time.Millisecond,
		DoubleTapSlop:    float32(c.Gesture.DoubleTapSlop),
		ZoomBase:         c.Gesture.ZoomBase,
		DoubleTapStep:    c.Gesture.DoubleTapStep,
		ScrollFactor:     c.Gesture.ScrollFactor,
	}

	style := &opts.Style
	if col, err := ParseColor(c.Style.Background); err == nil {
		style.Background = col
	}
	if col, err := ParseColor(c.Style.Foreground); err == nil {
		style.Foreground = col
	}
	if col, err := ParseColor(c.Style.Selection); err == nil {
		style.Selection = col
	}
	style.Padding = float32(c.Style.Padding)
	style.Title = c.Style.Title
	return opts
}

func (c Config) floatingOffsets() (map[int]int, error) {
	out := make(map[int]int, len(c.Layout.FloatingOffsets))
	keys := make([]string, 0, len(c.Layout.FloatingOffsets))
	for k := range c.Layout.FloatingOffsets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		period, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || period <= 0 {
			return nil, fmt.Errorf("layout.floating_offsets: invalid period %q", k)
		}
		out[period] = c.Layout.FloatingOffsets[k]
	}
	return out, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
