package config

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NewLogger builds a zap logger for the configured format and level
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "config: log_level")
	}

	var zc zap.Config
	if c.LogFormat == LogFormatDevelopment {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "config: build logger")
	}

	return logger, nil
}
