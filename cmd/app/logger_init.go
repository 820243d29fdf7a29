package main

import (
	"github.com/osse101/ItemRandomizer_Go/internal/config"
	"github.com/osse101/ItemRandomizer_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only in dev
	addSource := cfg.Environment == logger.EnvironmentDev

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
