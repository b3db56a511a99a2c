package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

var logLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"error"`
	NoColors bool   `yaml:"no-colors" env:"NO_COLORS"`
}

// MustLoad - load configuration from the config.yml file, or from the environment when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	if !slices.Contains(logLevels, config.LogLevel) {
		return nil, fmt.Errorf("%w: %q, expected one of %v", ErrUnknownLogLevel, config.LogLevel, logLevels)
	}

	return config, nil
}
