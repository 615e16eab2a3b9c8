package cmd

import (
	"fmt"
	"os"

	"squidbot/config"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging applies the configured level and format to the global logger
func ConfigureLogging(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: expected json or text", cfg.LogFormat)
	}

	log.SetOutput(os.Stdout)
	return nil
}
