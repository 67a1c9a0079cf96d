// Package config provides configuration loading and access for the camera demo.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/pinchcam/camera"
	"github.com/pthm-cable/pinchcam/gesture"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps host-side validation failures. Filter tuning failures
// wrap camera.ErrInvalidSettings instead.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all demo configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Swipe     SwipeConfig     `yaml:"swipe"`
	Pinch     PinchConfig     `yaml:"pinch"`
	Input     InputConfig     `yaml:"input"`
	Scene     SceneConfig     `yaml:"scene"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CameraConfig holds the camera's starting pose.
type CameraConfig struct {
	X   float32 `yaml:"x"`
	Y   float32 `yaml:"y"`
	Z   float32 `yaml:"z"`   // Height above the ground plane
	FOV float32 `yaml:"fov"` // Vertical field of view in degrees
}

// SwipeConfig holds drag parameters.
type SwipeConfig struct {
	MinArea     camera.Rect `yaml:"min_area"`    // Pannable area at the smallest fov
	MaxArea     camera.Rect `yaml:"max_area"`    // Pannable area at the largest fov
	Sensitivity float32     `yaml:"sensitivity"` // World units per pixel at full zoom-out
	Back        float32     `yaml:"back"`        // Elastic overshoot while dragging
	Damping     float32     `yaml:"damping"`     // Approach rate per second
}

// PinchConfig holds zoom parameters.
type PinchConfig struct {
	Range       camera.ScalarRange `yaml:"range"`
	Sensitivity float32            `yaml:"sensitivity"` // Exponent applied to the pinch scale
	Back        float32            `yaml:"back"`        // Elastic overshoot while pinching
	Damping     float32            `yaml:"damping"`     // Approach rate per second
}

// InputConfig holds gesture backend settings.
type InputConfig struct {
	Hover          gesture.HoverMode `yaml:"hover"`
	MouseEmulation bool              `yaml:"mouse_emulation"` // Left drag = finger, ctrl+drag = pinch
}

// SceneConfig holds the landmark grid drawn under the camera.
type SceneConfig struct {
	Spacing float32 `yaml:"spacing"` // Distance between landmarks
	Radius  float32 `yaml:"radius"`  // Landmark radius
	Margin  float32 `yaml:"margin"`  // How far the grid extends past the swipe area
	Seed    int64   `yaml:"seed"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per stats window
	PerfWindow  int     `yaml:"perf_window"`  // Frames in the rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32       float32 // 1 / TargetFPS
	ScreenW32  float32
	ScreenH32  float32
	StartPos   mgl32.Vec3
	SceneBound camera.Rect // Union of swipe areas grown by Scene.Margin
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return Parse(data)
}

// Parse overlays data on the embedded defaults, validates, and computes derived values.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Unmarshal into same struct - only overwrites fields present in data
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Settings converts the swipe, pinch and input sections into filter settings.
func (c *Config) Settings() camera.Settings {
	return camera.Settings{
		SwipeBounds:      camera.SwipeBounds{Min: c.Swipe.MinArea, Max: c.Swipe.MaxArea},
		SwipeSensitivity: c.Swipe.Sensitivity,
		SwipeBack:        c.Swipe.Back,
		SwipeDamping:     c.Swipe.Damping,
		PinchRange:       c.Pinch.Range,
		PinchSensitivity: c.Pinch.Sensitivity,
		PinchBack:        c.Pinch.Back,
		PinchDamping:     c.Pinch.Damping,
		Hover:            c.Input.Hover,
	}
}

// Validate checks the filter tuning and the host settings.
func (c *Config) Validate() error {
	if err := c.Settings().Validate(); err != nil {
		return err
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("%w: target fps %d", ErrInvalid, c.Screen.TargetFPS)
	}
	floats := []struct {
		name  string
		value float64
	}{
		{"camera x", float64(c.Camera.X)},
		{"camera y", float64(c.Camera.Y)},
		{"camera z", float64(c.Camera.Z)},
		{"camera fov", float64(c.Camera.FOV)},
		{"scene spacing", float64(c.Scene.Spacing)},
		{"scene radius", float64(c.Scene.Radius)},
		{"scene margin", float64(c.Scene.Margin)},
		{"telemetry stats window", c.Telemetry.StatsWindow},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalid, f.name, f.value)
		}
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera fov %v must be in (0, 180)", ErrInvalid, c.Camera.FOV)
	}
	if c.Camera.Z <= 0 {
		return fmt.Errorf("%w: camera height %v must be positive", ErrInvalid, c.Camera.Z)
	}
	if c.Scene.Spacing <= 0 {
		return fmt.Errorf("%w: scene spacing %v must be positive", ErrInvalid, c.Scene.Spacing)
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("%w: telemetry stats window %v must be positive", ErrInvalid, c.Telemetry.StatsWindow)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = 1 / float32(c.Screen.TargetFPS)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.StartPos = mgl32.Vec3{c.Camera.X, c.Camera.Y, c.Camera.Z}

	a, b := c.Swipe.MinArea, c.Swipe.MaxArea
	c.Derived.SceneBound = camera.Rect{
		XMin: min(a.XMin, b.XMin),
		XMax: max(a.XMax, b.XMax),
		YMin: min(a.YMin, b.YMin),
		YMax: max(a.YMax, b.YMax),
	}.Grow(c.Scene.Margin)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
