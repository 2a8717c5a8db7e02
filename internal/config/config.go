// Package config loads application settings from a YAML file, falling
// back to built-in defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Neonscape/HexaMapper/internal/hexmap"
)

// Background selects how the canvas behind the map is cleared.
type Background struct {
	// Mode is "gradient" or "solid".
	Mode       string       `yaml:"mode"`
	SolidColor hexmap.Color `yaml:"solid_color"`
	GradColor0 hexmap.Color `yaml:"grad_color_0"`
	GradColor1 hexmap.Color `yaml:"grad_color_1"`
}

// Engine holds the map storage parameters.
type Engine struct {
	ChunkSize int     `yaml:"chunk_size"`
	HexRadius float32 `yaml:"hex_radius"`
}

// Custom holds the user-tunable appearance settings.
type Custom struct {
	OutlineColor     hexmap.Color `yaml:"outline_color"`
	DefaultCellColor hexmap.Color `yaml:"default_cell_color"`
	OutlineWidth     float32      `yaml:"outline_width"`
}

// View holds the camera limits.
type View struct {
	MinZoom float32 `yaml:"min_zoom"`
	MaxZoom float32 `yaml:"max_zoom"`
}

// Config is the full application configuration.
type Config struct {
	Background Background `yaml:"background"`
	Engine     Engine     `yaml:"engine"`
	Custom     Custom     `yaml:"custom"`
	View       View       `yaml:"view"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Background: Background{
			Mode:       "gradient",
			SolidColor: hexmap.MustColor("#495766FF"),
			GradColor0: hexmap.MustColor("#495766FF"),
			GradColor1: hexmap.MustColor("#60656bFF"),
		},
		Engine: Engine{
			ChunkSize: 16,
			HexRadius: 1,
		},
		Custom: Custom{
			OutlineColor:     hexmap.MustColor("#9999996A"),
			DefaultCellColor: hexmap.MustColor("#888888FF"),
			OutlineWidth:     2,
		},
		View: View{
			MinZoom: 0.01,
			MaxZoom: 5.0,
		},
	}
}

// Load reads path and merges it over the defaults. A missing file is
// not an error; a malformed one is, with the defaults returned so the
// caller can still run.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

// Save writes the configuration to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c Config) validate() error {
	if c.Engine.ChunkSize < 1 {
		return fmt.Errorf("engine.chunk_size must be positive, got %d", c.Engine.ChunkSize)
	}
	if c.Engine.HexRadius <= 0 {
		return fmt.Errorf("engine.hex_radius must be positive, got %v", c.Engine.HexRadius)
	}
	if c.View.MinZoom <= 0 || c.View.MaxZoom < c.View.MinZoom {
		return fmt.Errorf("view zoom range [%v, %v] is invalid", c.View.MinZoom, c.View.MaxZoom)
	}
	switch c.Background.Mode {
	case "gradient", "solid":
	default:
		return fmt.Errorf("background.mode must be gradient or solid, got %q", c.Background.Mode)
	}
	return nil
}
