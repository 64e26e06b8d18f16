package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultFile is the config file consulted when --config is not given
const DefaultFile = ".env"

// Keys recognized in the config file and the process environment
const (
	KeyDefaultDir = "DEFAULT_DIR"
	KeyEnginePath = "FFMPEG_PATH"
)

// Config represents the resolved tool configuration
type Config struct {
	DefaultDir string // directory offered for video scanning
	EnginePath string // ffmpeg executable name or path
}

// Default returns the built-in configuration used when neither the config
// file nor the environment overrides a value
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DefaultDir: filepath.Join(home, "Downloads"),
		EnginePath: "ffmpeg",
	}
}

// Load resolves the configuration from path: built-in defaults first, then
// the config file, then process environment variables. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	values, err := godotenv.Read(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		apply(cfg, values)
	}

	apply(cfg, map[string]string{
		KeyDefaultDir: os.Getenv(KeyDefaultDir),
		KeyEnginePath: os.Getenv(KeyEnginePath),
	})

	return cfg, nil
}

func apply(cfg *Config, values map[string]string) {
	if v := values[KeyDefaultDir]; v != "" {
		cfg.DefaultDir = v
	}
	if v := values[KeyEnginePath]; v != "" {
		cfg.EnginePath = v
	}
}

// Save writes the configuration to path in key=value form
func Save(cfg *Config, path string) error {
	values := map[string]string{
		KeyDefaultDir: cfg.DefaultDir,
		KeyEnginePath: cfg.EnginePath,
	}
	if err := godotenv.Write(values, path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
