// Package config loads the demo's window and view layout from yaml.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Ripple modes select the factory used for a view.
const (
	RippleCenter = "center"
	RippleCompat = "compat"
	RippleAuto   = "auto"
	RippleNone   = "none"
)

// Native ripple settings.
const (
	NativeAuto = "auto"
	NativeOn   = "on"
	NativeOff  = "off"
)

// Config is the demo configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`

	// NativeRipple is "auto", "on" or "off". auto uses the build platform.
	NativeRipple string `yaml:"nativeRipple"`

	Views []ViewConfig `yaml:"views"`
}

// WindowConfig sizes the window.
type WindowConfig struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Title      string   `yaml:"title"`
	Background HexColor `yaml:"background"`
}

// ViewConfig describes one view and the ripple installed on it.
type ViewConfig struct {
	Label   string        `yaml:"label"`
	X       int           `yaml:"x"`
	Y       int           `yaml:"y"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Padding PaddingConfig `yaml:"padding"`

	// Ripple is one of center, compat, auto or none.
	Ripple string   `yaml:"ripple"`
	Color  HexColor `yaml:"color"`

	Background BackgroundConfig `yaml:"background"`

	// Disabled views show the disabled color and ignore input.
	Disabled bool `yaml:"disabled"`
}

// PaddingConfig is a view's inner padding in pixels.
type PaddingConfig struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// BackgroundConfig holds the per-state colors of a view background.
type BackgroundConfig struct {
	Normal   HexColor `yaml:"normal"`
	Hovered  HexColor `yaml:"hovered"`
	Pressed  HexColor `yaml:"pressed"`
	Disabled HexColor `yaml:"disabled"`
}

// HexColor is an opaque color written as "#rrggbb" or "#rgb".
type HexColor struct {
	color.NRGBA
	set bool
}

// IsSet reports whether the color was present in the file.
func (h HexColor) IsSet() bool {
	return h.set
}

func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: color must be a string: %w", value.Line, err)
	}
	c, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*h = HexColor{NRGBA: c, set: true}
	return nil
}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Default returns the embedded demo configuration.
func Default() (*Config, error) {
	return Parse(defaultYAML)
}

// Load reads the configuration at path. An empty path loads the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates yaml configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 480
	}
	if c.Window.Height == 0 {
		c.Window.Height = 400
	}
	if c.Window.Title == "" {
		c.Window.Title = "Ripple"
	}
	if !c.Window.Background.IsSet() {
		c.Window.Background = HexColor{NRGBA: color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}, set: true}
	}
	if c.NativeRipple == "" {
		c.NativeRipple = NativeAuto
	}
	for i := range c.Views {
		v := &c.Views[i]
		if v.Ripple == "" {
			v.Ripple = RippleAuto
		}
		bg := &v.Background
		if !bg.Normal.IsSet() {
			bg.Normal = HexColor{NRGBA: color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}, set: true}
		}
		if !bg.Hovered.IsSet() {
			bg.Hovered = bg.Normal
		}
		if !bg.Pressed.IsSet() {
			bg.Pressed = bg.Normal
		}
		if !bg.Disabled.IsSet() {
			bg.Disabled = bg.Normal
		}
	}
}

// Validate checks that sizes are positive and enumerations are known.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.NativeRipple {
	case NativeAuto, NativeOn, NativeOff:
	default:
		return fmt.Errorf("nativeRipple %q must be auto, on or off", c.NativeRipple)
	}

	for i, v := range c.Views {
		if v.Width <= 0 || v.Height <= 0 {
			return fmt.Errorf("view %d (%s): size %dx%d must be positive", i, v.Label, v.Width, v.Height)
		}
		switch v.Ripple {
		case RippleCenter, RippleCompat, RippleAuto, RippleNone:
		default:
			return fmt.Errorf("view %d (%s): unknown ripple %q", i, v.Label, v.Ripple)
		}
		if v.Ripple != RippleNone && !v.Color.IsSet() {
			return fmt.Errorf("view %d (%s): ripple color is required", i, v.Label)
		}
	}
	return nil
}
