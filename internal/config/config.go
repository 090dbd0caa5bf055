package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/termtour/internal/ui"
)

// Config holds the launcher settings shared by every example.
type Config struct {
	AltScreen     bool          `yaml:"alt_screen"`
	Color         string        `yaml:"color"`
	NotifyTimeout time.Duration `yaml:"notify_timeout"`
	LogFile       string        `yaml:"log_file"`
	LogLevel      string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		AltScreen:     true,
		Color:         string(ui.ColorAuto),
		NotifyTimeout: 5 * time.Second,
		LogLevel:      "info",
	}
}

// Path returns $XDG_CONFIG_HOME/termtour/config.yaml, falling back to
// ~/.config when the user config dir is unknown.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "termtour", "config.yaml")
}

// Load reads path over the defaults. An empty path means Path(), and only
// that default file may be missing.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = Path()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.LogFile = expandHome(cfg.LogFile)
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := ui.ParseColorMode(c.Color); err != nil {
		return err
	}
	if c.NotifyTimeout <= 0 {
		c.NotifyTimeout = 5 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}

func expandHome(p string) string {
	if len(p) > 0 && p[0] == '~' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, p[1:])
	}
	return p
}
