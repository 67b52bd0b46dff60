package app

import "fmt"

// Config holds the fully parsed command line configuration for one
// application run. OutputPath and Format, when set, override the values
// from the configuration file.
type Config struct {
	ConfigPath string
	OutputPath string
	Format     string
	LogFormat  string
	LogLevel   string
	Workers    int
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, fmt.Errorf("config path must not be empty")
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return &cfg, nil
}
