// Package config loads settings from defaults, an optional YAML file, a
// .env file and SLEEPTIMER_* environment variables, in that order.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"sleeptimer/internal/bedtime"
	"sleeptimer/internal/logging"
)

type Config struct {
	Log      LogConfig      `yaml:"log"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
	Web      WebConfig      `yaml:"web"`
	Bedtime  BedtimeConfig  `yaml:"bedtime"`
	UI       UIConfig       `yaml:"ui"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"SLEEPTIMER_LOG_LEVEL, overwrite"`
	Format string `yaml:"format" env:"SLEEPTIMER_LOG_FORMAT, overwrite"`
}

type ShutdownConfig struct {
	// DryRun logs shutdown commands instead of running them.
	DryRun bool `yaml:"dry_run" env:"SLEEPTIMER_DRY_RUN, overwrite"`
}

type WebConfig struct {
	Port int `yaml:"port" env:"SLEEPTIMER_PORT, overwrite"`
}

type BedtimeConfig struct {
	Wake  string `yaml:"wake" env:"SLEEPTIMER_WAKE, overwrite"`
	Hours string `yaml:"hours" env:"SLEEPTIMER_HOURS, overwrite"`
}

type UIConfig struct {
	Dark bool `yaml:"dark" env:"SLEEPTIMER_DARK, overwrite"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Web: WebConfig{
			Port: 8585,
		},
		Bedtime: BedtimeConfig{
			Wake:  "06:30",
			Hours: "8",
		},
		UI: UIConfig{
			Dark: true,
		},
	}
}

// DefaultPath is config.yaml in the user's config directory, or "" when
// there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sleeptimer", "config.yaml")
}

// Load builds the configuration. A missing file at the default path is fine;
// a missing file that was asked for explicitly is an error.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv reads .env files into the process environment without overriding
// variables that are already set.
func LoadEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q, expected text or json", c.Log.Format)
	}
	if c.Web.Port < 0 || c.Web.Port > 65535 {
		return fmt.Errorf("invalid web.port %d", c.Web.Port)
	}
	if c.Bedtime.Wake != "" {
		if _, _, err := bedtime.ParseWakeTime(c.Bedtime.Wake); err != nil {
			return fmt.Errorf("invalid bedtime.wake: %w", err)
		}
	}
	if _, err := bedtime.ParseHours(c.Bedtime.Hours); err != nil {
		return fmt.Errorf("invalid bedtime.hours: %w", err)
	}
	return nil
}
