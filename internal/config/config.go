// Package config resolves runtime settings: defaults, then an optional YAML
// file, then .env, then the process environment. CLI flags are applied last
// by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/packlist/internal/logging"
)

const (
	EnvConfig  = "PACKLIST_CONFIG"
	EnvBackend = "PACKLIST_BACKEND"
	EnvDir     = "PACKLIST_DIR"
	EnvKey     = "PACKLIST_KEY"
	EnvTheme   = "PACKLIST_THEME"
	EnvLog     = "PACKLIST_LOG"
	EnvDebug   = "PACKLIST_DEBUG"
)

type Config struct {
	Backend string `yaml:"backend"` // json | sqlite | badger | memory
	Dir     string `yaml:"dir"`     // data directory for the backend
	Key     string `yaml:"key"`     // storage key holding the trips
	Theme   string `yaml:"theme"`   // classic | neon | mono
	LogFile string `yaml:"log_file"`
	Debug   bool   `yaml:"debug"`

	// Source is the YAML file that was read, empty when none.
	Source string `yaml:"-"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	dir := ".packlist"
	if base, err := os.UserConfigDir(); err == nil {
		dir = filepath.Join(base, "packlist")
	}
	return Config{
		Backend: "json",
		Dir:     dir,
		Key:     "packingListTrips",
		Theme:   "classic",
	}
}

// DefaultPath is where the YAML file is looked up when PACKLIST_CONFIG is unset.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "packlist", "config.yaml")
}

// Load resolves the configuration. A missing YAML file or .env is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Debug("config", "no .env file found, using environment variables")
	} else {
		logging.Debug("config", "loaded .env file")
	}

	cfg := Defaults()
	path := strings.TrimSpace(os.Getenv(EnvConfig))
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if !explicit && errors.Is(err, os.ErrNotExist) {
				logging.Debug("config", "no config file at %s", path)
			} else {
				return cfg, err
			}
		}
	}
	cfg.mergeEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(b, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.overlay(file)
	c.Source = path
	logging.Debug("config", "loaded %s", path)
	return nil
}

func (c *Config) mergeEnv() {
	c.overlay(Config{
		Backend: os.Getenv(EnvBackend),
		Dir:     os.Getenv(EnvDir),
		Key:     os.Getenv(EnvKey),
		Theme:   os.Getenv(EnvTheme),
		LogFile: os.Getenv(EnvLog),
	})
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvDebug))) {
	case "1", "true", "yes", "on":
		c.Debug = true
	}
}

// overlay copies every non-empty field of o onto c.
func (c *Config) overlay(o Config) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&c.Backend, o.Backend)
	set(&c.Dir, o.Dir)
	set(&c.Key, o.Key)
	set(&c.Theme, o.Theme)
	set(&c.LogFile, o.LogFile)
	if o.Debug {
		c.Debug = true
	}
}

// Save writes c as YAML to path, creating parent directories.
func (c Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
