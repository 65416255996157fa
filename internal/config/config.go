package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Compute ComputeConfig `yaml:"compute"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type ComputeConfig struct {
	// N is used when no value is given on the command line.
	N int `yaml:"n"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

var logLevels = []string{"debug", "info", "warn", "error"}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Compute: ComputeConfig{
			N: 100,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: FormatText,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// Validate checks the output and logging settings. N is left to the
// computation so that its error reaches the caller unchanged.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	switch c.Logging.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	if !isLogLevel(c.Logging.Level) {
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

func isLogLevel(s string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(s, l) {
			return true
		}
	}
	return false
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GOLDBACH_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Compute.N = n
		}
	}
	if v := os.Getenv("GOLDBACH_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("GOLDBACH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("GOLDBACH_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
