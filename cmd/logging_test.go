package cmd

import (
	"testing"

	"squidbot/config"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	t.Cleanup(func() {
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
	})

	t.Run("json at debug", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.LogLevel = "debug"
		cfg.LogFormat = "json"

		require.NoError(t, ConfigureLogging(cfg))
		assert.Equal(t, log.DebugLevel, log.GetLevel())
		assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)
	})

	t.Run("text at warn", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.LogLevel = "warn"
		cfg.LogFormat = "text"

		require.NoError(t, ConfigureLogging(cfg))
		assert.Equal(t, log.WarnLevel, log.GetLevel())
		assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.LogLevel = "loud"
		assert.Error(t, ConfigureLogging(cfg))
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.LogFormat = "xml"
		assert.Error(t, ConfigureLogging(cfg))
	})
}
