// Package config loads certplan settings from flags, environment, an
// optional YAML file and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/certplan/internal/logging"
)

// EnvPrefix namespaces environment overrides, e.g. CERTPLAN_LOG_LEVEL.
const EnvPrefix = "CERTPLAN"

// DateLayout is the format of plan.start_date.
const DateLayout = "2006-01-02"

// Config holds all settings.
type Config struct {
	DB      string     `mapstructure:"db"`
	Catalog string     `mapstructure:"catalog"`
	Log     LogConfig  `mapstructure:"log"`
	Plan    PlanConfig `mapstructure:"plan"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// PlanConfig holds defaults for new study plans.
type PlanConfig struct {
	WeeklyHours float64 `mapstructure:"weekly_hours"`
	StartDate   string  `mapstructure:"start_date"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")
	v.SetDefault("catalog", "")
	v.SetDefault("log.level", logging.DefaultLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("plan.weekly_hours", 10)
	v.SetDefault("plan.start_date", "")
}

// Load reads configFile (or config.yaml in DefaultDir when empty) into
// v and returns the validated result. A missing default file is not an
// error; a missing explicit file is.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotEnv loads environment variables from the given files, skipping
// any that do not exist. Variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	var problems []string
	if c.Plan.WeeklyHours <= 0 {
		problems = append(problems, fmt.Sprintf("plan.weekly_hours must be greater than zero, got %g", c.Plan.WeeklyHours))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level: "+err.Error())
	}
	if _, err := c.StartDate(); err != nil {
		problems = append(problems, "plan.start_date: "+err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// StartDate parses plan.start_date. An empty value returns the zero time.
func (c *Config) StartDate() (time.Time, error) {
	if c.Plan.StartDate == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, c.Plan.StartDate, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("want YYYY-MM-DD, got %q", c.Plan.StartDate)
	}
	return t, nil
}

// DefaultDir resolves the config directory:
// $XDG_CONFIG_HOME/certplan, falling back to ~/.config/certplan.
func DefaultDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "certplan"), nil
}
