package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// PathEnv names the variable holding the YAML config path.
	PathEnv = "CONFIG_PATH"

	defaultPath = "./config.yaml"
)

// Load resolves the config file from CONFIG_PATH and delegates to LoadFile.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(PathEnv))
}

// LoadFile reads path, overlays environment variables and validates the
// result. Environment wins over YAML, YAML over env-default tags. An empty
// path tries ./config.yaml and silently falls back to the environment when
// that file is absent; an explicit path must exist.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	err := cleanenv.ReadConfig(path, &cfg)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		cfg = Config{}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Usage lists every environment variable the service reads, with defaults.
func Usage() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
