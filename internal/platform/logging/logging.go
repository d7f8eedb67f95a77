// Package logging builds the process logger from the environment.
package logging

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls the logger. Verbose is set from the command line and wins
// over Level.
type Config struct {
	Level    string `env:"ROSTER_LOG_LEVEL"    envDefault:"warn"`
	Encoding string `env:"ROSTER_LOG_ENCODING" envDefault:"console"`
	Verbose  bool   `env:"-"`
}

func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func New(cfg Config) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	switch cfg.Encoding {
	case "", "console":
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case "json":
		config.Encoding = "json"
	default:
		return nil, fmt.Errorf("unsupported log encoding %q", cfg.Encoding)
	}

	level := zapcore.WarnLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
