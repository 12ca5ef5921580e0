package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "CAREERLAB"

// Keys.
const (
	KeyDataFile = "data_file"
	KeyJobCount = "job_count"
	KeyQuizSize = "quiz_size"
	KeySeed     = "seed"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
)

// Config is the resolved runtime configuration.
type Config struct {
	// DataFile is the dataset cache path. Empty means the default location.
	DataFile string `mapstructure:"data_file"`
	// JobCount is the number of postings generated for a fresh dataset.
	JobCount int `mapstructure:"job_count"`
	// QuizSize is the number of questions per play-through.
	QuizSize int `mapstructure:"quiz_size"`
	// Seed seeds all randomness. Zero picks a time based seed.
	Seed     uint64 `mapstructure:"seed"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDataFile, "")
	v.SetDefault(KeyJobCount, 1000)
	v.SetDefault(KeyQuizSize, 10)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and decodes the merged settings.
// An explicit file must exist; the default file is skipped when absent.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(p); err == nil {
			file = p
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.JobCount <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyJobCount, c.JobCount)
	}
	if c.QuizSize <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyQuizSize, c.QuizSize)
	}
	return nil
}

// DefaultConfigPath resolves the config file location:
// 1. $XDG_CONFIG_HOME/careerlab/config.yaml
// 2. ~/.config/careerlab/config.yaml
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "careerlab", "config.yaml"), nil
}
