// Package config loads phylograph settings from a TOML file.
//
// The file is optional: when it is absent every consumer falls back to the
// built-in defaults. Flags always win over file values, so the precedence is
// flags > config file > defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/phylograph/phylograph/pkg/errors"
	"github.com/phylograph/phylograph/pkg/pipeline"
)

// Cache backend names accepted in the config file.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds user-level settings.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig mirrors the layout flags.
type LayoutConfig struct {
	Direction string  `toml:"direction"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
}

// RenderConfig mirrors the render flags.
type RenderConfig struct {
	Formats []string `toml:"formats"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend string `toml:"backend"`
	// Addr is the Redis address, only used when Backend is "redis".
	Addr string `toml:"addr"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Layout: LayoutConfig{
			Direction: pipeline.DefaultDirection,
			Width:     pipeline.DefaultWidth,
			Height:    pipeline.DefaultHeight,
		},
		Render: RenderConfig{
			Formats: []string{pipeline.FormatSVG},
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			Addr:    "localhost:6379",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Path returns the expected config file location:
// $XDG_CONFIG_HOME/phylograph/config.toml, falling back to
// ~/.config/phylograph/config.toml.
func Path() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "resolve home directory")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "phylograph", "config.toml"), nil
}

// Load reads the config file at the default location. A missing file is not
// an error: the defaults are returned.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path, merging its values
// over the defaults. A missing file returns the defaults without error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Default(), errors.New(errors.ErrCodeInvalidConfig,
			"unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	opts := pipeline.Options{
		Direction: c.Layout.Direction,
		Width:     c.Layout.Width,
		Height:    c.Layout.Height,
	}
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}

	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone, "":
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend: %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	return nil
}
