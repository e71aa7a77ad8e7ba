package seeder

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder settings. Command-line flags override these values.
type Config struct {
	DataPath string   `yaml:"data_path" env:"SEEDER_DATA_PATH"`
	DryRun   bool     `yaml:"dry_run"   env:"SEEDER_DRY_RUN"`
	Phases   []string `yaml:"phases"    env:"SEEDER_PHASES"    env-separator:","`
}

// LoadConfig reads path when given, then overlays SEEDER_* variables.
// An empty path reads the environment only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read env: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("seeder config: %s does not exist", path)
		}
		return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
	}
	return &cfg, nil
}
