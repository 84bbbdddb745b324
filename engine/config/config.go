// Package config loads overlay settings from defaults, an optional file and
// OVERLAY_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window   WindowConfig
	Panel    PanelConfig
	Render   RenderConfig
	Assets   AssetsConfig
	Log      LogConfig
	Snapshot SnapshotConfig
}

type WindowConfig struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// PanelConfig places the category frames.
type PanelConfig struct {
	X         int
	Y         int
	Width     int
	RowHeight int `mapstructure:"row_height"`
	Spacing   int
	ToggleKey string `mapstructure:"toggle_key"`
	// Icons maps a lower-cased category to a texture id drawn in its title bar.
	Icons map[string]string
}

// RenderConfig holds tessellation settings for rounded shapes.
type RenderConfig struct {
	CornerSamples int     `mapstructure:"corner_samples"`
	CircleSamples int     `mapstructure:"circle_samples"`
	CornerRadius  float64 `mapstructure:"corner_radius"`
}

type AssetsConfig struct {
	Root     string
	Manifest string
	Font     string
	FontSize float64 `mapstructure:"font_size"`
}

type LogConfig struct {
	Level string
}

// SnapshotConfig drives the headless panel dump.
type SnapshotConfig struct {
	Output string
	Width  int
	Height int
	Scale  float64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "overlay")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.vsync", true)

	v.SetDefault("panel.x", 20)
	v.SetDefault("panel.y", 20)
	v.SetDefault("panel.width", 110)
	v.SetDefault("panel.row_height", 14)
	v.SetDefault("panel.spacing", 10)
	v.SetDefault("panel.toggle_key", "right_shift")
	v.SetDefault("panel.icons", map[string]string{
		"movement": "movement.png",
		"combat":   "combat.png",
		"render":   "render.png",
	})

	v.SetDefault("render.corner_samples", 8)
	v.SetDefault("render.circle_samples", 24)
	v.SetDefault("render.corner_radius", 4.0)

	v.SetDefault("assets.root", "assets")
	v.SetDefault("assets.manifest", "modules.yaml")
	v.SetDefault("assets.font", "")
	v.SetDefault("assets.font_size", 13.0)

	v.SetDefault("log.level", "info")

	v.SetDefault("snapshot.output", "panel.png")
	v.SetDefault("snapshot.width", 640)
	v.SetDefault("snapshot.height", 360)
	v.SetDefault("snapshot.scale", 2.0)
}

// Load reads configuration from path, or from OVERLAY_CONFIG, or from
// overlay.{yaml,toml,json} in the working directory. A missing default file
// is not an error; an explicitly named one is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = os.Getenv("OVERLAY_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("overlay")
	}

	v.SetEnvPrefix("OVERLAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects geometry the panel cannot lay out.
func (c Config) Validate() error {
	switch {
	case c.Panel.Width <= 0:
		return fmt.Errorf("panel.width must be positive, got %d", c.Panel.Width)
	case c.Panel.RowHeight <= 0:
		return fmt.Errorf("panel.row_height must be positive, got %d", c.Panel.RowHeight)
	case c.Render.CornerSamples < 1:
		return fmt.Errorf("render.corner_samples must be at least 1, got %d", c.Render.CornerSamples)
	case c.Render.CircleSamples < 3:
		return fmt.Errorf("render.circle_samples must be at least 3, got %d", c.Render.CircleSamples)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
