package main

import (
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// loggerConfig starts from the preset for the configured environment and
// applies the explicit app configuration on top
func loggerConfig(cfg *config.Config) logger.Config {
	loggerCfg := logger.ConfigFor(cfg.Environment)

	if cfg.LogLevel != "" {
		loggerCfg.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		loggerCfg.Format = cfg.LogFormat
	}
	if cfg.ServiceName != "" {
		loggerCfg.ServiceName = cfg.ServiceName
	}
	if cfg.Version != "" {
		loggerCfg.Version = cfg.Version
	}

	return loggerCfg
}
