// Package config loads afish settings from YAML, layered over embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every setting the CLI reads.
type Config struct {
	SavePath string        `yaml:"save_path"`
	Store    string        `yaml:"store"`
	Catalog  CatalogConfig `yaml:"catalog"`
	Tank     TankConfig    `yaml:"tank"`
	Log      LogConfig     `yaml:"log"`
	Board    BoardConfig   `yaml:"board"`
}

type CatalogConfig struct {
	Species       string `yaml:"species"`
	Personalities string `yaml:"personalities"`
}

type TankConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	MaxFish int `yaml:"max_fish"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty means stderr
}

type BoardConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// Tick is the board animation interval.
func (b BoardConfig) Tick() time.Duration {
	if b.TickMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(b.TickMS) * time.Millisecond
}

// Load reads the YAML file at path over the embedded defaults. Only fields
// present in the file are overwritten. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Store) {
	case "json", "sqlite":
	default:
		return fmt.Errorf("config: store must be json or sqlite, got %q", c.Store)
	}
	if c.Tank.Width <= 0 || c.Tank.Height <= 0 {
		return fmt.Errorf("config: tank size must be positive, got %dx%d", c.Tank.Width, c.Tank.Height)
	}
	if c.Tank.MaxFish <= 0 {
		return fmt.Errorf("config: tank.max_fish must be positive, got %d", c.Tank.MaxFish)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog level. Empty means warn.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: bad log level %q", s)
	}
	return lvl, nil
}
