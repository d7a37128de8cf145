// Package config loads the wheel configuration. Values come from defaults,
// optionally overridden by a JSON file, and are returned as an immutable
// value that is passed to every component that needs it.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "tinted.cfg.json"

// Wheel configures a color wheel and the window hosting it. DefaultSlice is
// the analogous spacing in artistic degrees, InitRoot the seed color, and
// Colors, when set, replaces the MarkerCount seeded markers.
type Wheel struct {
	Radius             float64        `json:"radius" mapstructure:"radius"`
	MarkerWidth        float64        `json:"markerWidth" mapstructure:"markerWidth"`
	MarkerOutlineWidth float64        `json:"markerOutlineWidth" mapstructure:"markerOutlineWidth"`
	Margin             float64        `json:"margin" mapstructure:"margin"`
	DefaultSlice       float64        `json:"defaultSlice" mapstructure:"defaultSlice"`
	InitRoot           string         `json:"initRoot" mapstructure:"initRoot"`
	InitMode           string         `json:"initMode" mapstructure:"initMode"`
	MarkerCount        int            `json:"markerCount" mapstructure:"markerCount"`
	Colors             []MarkerConfig `json:"colors" mapstructure:"colors"`

	Window WindowConfig `json:"window" mapstructure:"window"`
}

// MarkerConfig is one explicitly configured marker. Color accepts anything
// palette.ParseColor does.
type MarkerConfig struct {
	Color  string `json:"color" mapstructure:"color"`
	Label  string `json:"label" mapstructure:"label"`
	Hidden bool   `json:"hidden" mapstructure:"hidden"`
}

// WindowConfig holds host window settings.
type WindowConfig struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

// Default returns the built-in configuration.
func Default() Wheel {
	return Wheel{
		Radius:             100,
		MarkerWidth:        25,
		MarkerOutlineWidth: 1,
		Margin:             25.0/2 + 1,
		DefaultSlice:       20,
		InitRoot:           "red",
		InitMode:           "analogous",
		MarkerCount:        5,
		Window:             WindowConfig{Width: 960, Height: 960},
	}
}

func setDefaults() {
	d := Default()
	viper.SetDefault("radius", d.Radius)
	viper.SetDefault("markerWidth", d.MarkerWidth)
	viper.SetDefault("markerOutlineWidth", d.MarkerOutlineWidth)
	viper.SetDefault("margin", d.Margin)
	viper.SetDefault("defaultSlice", d.DefaultSlice)
	viper.SetDefault("initRoot", d.InitRoot)
	viper.SetDefault("initMode", d.InitMode)
	viper.SetDefault("markerCount", d.MarkerCount)
	viper.SetDefault("colors", []MarkerConfig{})
	viper.SetDefault("window.width", d.Window.Width)
	viper.SetDefault("window.height", d.Window.Height)
}

// Load reads configuration from the JSON file in configDir on top of the
// defaults. An empty configDir, or a directory without the file, yields the
// defaults.
func Load(configDir string) (Wheel, error) {
	setDefaults()

	if configDir != "" {
		viper.SetConfigName(FileName)
		viper.SetConfigType("json")
		viper.AddConfigPath(configDir)

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Wheel{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Wheel
	if err := viper.Unmarshal(&cfg); err != nil {
		return Wheel{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Wheel{}, err
	}
	return cfg, nil
}

// Validate checks the geometric settings. Mode and color strings are
// validated by the wheel itself.
func (c Wheel) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", c.Radius)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %v", c.Margin)
	}
	if c.MarkerCount < 0 {
		return fmt.Errorf("markerCount must not be negative, got %d", c.MarkerCount)
	}
	return nil
}

// ViewBox returns the wheel's bounds in SVG space, including the margin
// that keeps markers on the rim fully visible.
func (c Wheel) ViewBox() (x, y, w, h float64) {
	d := 2 * c.Radius
	return -c.Margin, -c.Margin, d + 2*c.Margin, d + 2*c.Margin
}
