package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phylograph/phylograph/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Layout.Direction != "LR" {
		t.Errorf("Direction = %q, want LR", cfg.Layout.Direction)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Backend = %q, want file", cfg.Cache.Backend)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[layout]
direction = "TB"
width = 1200

[render]
formats = ["svg", "dot"]

[cache]
backend = "redis"
addr = "redis.internal:6379"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Layout.Direction != "TB" {
		t.Errorf("Direction = %q, want TB", cfg.Layout.Direction)
	}
	if cfg.Layout.Width != 1200 {
		t.Errorf("Width = %v, want 1200", cfg.Layout.Width)
	}
	// Unset values keep their defaults.
	if cfg.Layout.Height != 600 {
		t.Errorf("Height = %v, want default 600", cfg.Layout.Height)
	}
	if len(cfg.Render.Formats) != 2 {
		t.Errorf("Formats = %v, want [svg dot]", cfg.Render.Formats)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.Addr != "redis.internal:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", `[layout`},
		{"unknown key", "[layout]\nspeed = 3\n"},
		{"bad direction", "[layout]\ndirection = \"UP\"\n"},
		{"bad format", "[render]\nformats = [\"pdf\"]\n"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFileInvalidCode(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "[cache]\nbackend = \"memcached\"\n"))
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidConfig {
		t.Errorf("code = %s, want %s", got, errors.ErrCodeInvalidConfig)
	}
}

func TestPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if path != "/tmp/xdg/phylograph/config.toml" {
		t.Errorf("Path = %q", path)
	}
}
