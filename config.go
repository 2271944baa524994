package console

import (
	"io"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/blackfern/console/formatter"
)

const (
	// DefaultSinkPath is where log-bearing messages are appended when no
	// path is configured.
	DefaultSinkPath = "console.log"
	// DefaultCapacity is the queue capacity when none is configured.
	// It is rounded up to a power of two by the queue.
	DefaultCapacity = 4096
)

// Config holds construction options for a Console.
type Config struct {
	// SinkPath is the file the log path appends to (default: console.log).
	// The sink path is the only externally configurable option.
	SinkPath string `env:"CONSOLE_SINK_PATH" envDefault:"console.log"`
	// Capacity is the queue capacity (default: 4096). Fixed for the
	// lifetime of the Console; rounded up to a power of two.
	Capacity int
	// Out is where console-bearing messages are rendered (default: os.Stdout)
	Out io.Writer
	// Formatter renders console output (default: formatter.NewTerm())
	Formatter formatter.Formatter
}

// ConfigFromEnv builds a Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.SinkPath == "" {
		cfg.SinkPath = DefaultSinkPath
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTerm()
	}
}
