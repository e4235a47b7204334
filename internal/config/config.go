// Package config loads ecotrack settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ecotrack/ecotrack/internal/logx"
	"github.com/ecotrack/ecotrack/internal/store"
	"github.com/ecotrack/ecotrack/internal/user"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "ecotrack.toml"

// EnvVarData overrides DataFile.
const EnvVarData = "ECOTRACK_DATA"

// Config holds ecotrack settings.
type Config struct {
	// DataFile is the users file.
	DataFile string `toml:"data_file"`

	// AtomicSave writes through a temp file and rename instead of truncating in place.
	AtomicSave bool `toml:"atomic_save"`

	// TopN is how many users each ranking awards.
	TopN int `toml:"top_n"`

	// LogLevel is a zerolog level name.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataFile: store.DefaultPath,
		TopN:     user.DefaultTopN,
		LogLevel: logx.DefaultLevel,
	}
}

// Load reads settings from path. An empty path means DefaultFile, which may be
// absent; an explicit path must exist. ECOTRACK_DATA is applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if data := os.Getenv(EnvVarData); data != "" {
		cfg.DataFile = data
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data_file must not be empty")
	}
	if c.TopN < 0 {
		return fmt.Errorf("top_n must not be negative, got %d", c.TopN)
	}
	return nil
}

// Store returns a store for the configured data file.
func (c *Config) Store() *store.Store {
	s := store.New(c.DataFile)
	s.Atomic = c.AtomicSave
	return s
}
