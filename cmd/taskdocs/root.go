package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wil-ckaew/taskdocs/internal/config"
	"github.com/wil-ckaew/taskdocs/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "taskdocs",
	Short: "Task and document CRUD service",
	Long: `taskdocs serves a JSON API over the tasks and documents tables.
Configuration is read from TASKDOCS_* environment variables and an
optional .env file.`,
	SilenceUsage: true,
}

// bootstrap loads the configuration and builds the application logger.
// The returned LoggerService must be shut down by the caller.
func bootstrap() (*config.Config, *zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, &log, loggerService, nil
}
