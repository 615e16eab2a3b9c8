package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.CommandPrefix)
	assert.Equal(t, int64(50), cfg.StartingBalance)
	assert.Equal(t, int64(1), cfg.SellMinReward)
	assert.Equal(t, int64(500), cfg.SellMaxReward)
	assert.Equal(t, 10, cfg.LeaderboardSize)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("STARTING_BALANCE", "100")
	t.Setenv("COMMAND_PREFIX", "!")
	t.Setenv("LEADERBOARD_SIZE", "5")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, int64(100), cfg.StartingBalance)
	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.Equal(t, 5, cfg.LeaderboardSize)
}

func TestLoad_RequiresTokenOutsideTest(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432")

	_, err := load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN is required")
}

func TestLoad_RejectsInvertedRewardRange(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("SELL_MIN_REWARD", "10")
	t.Setenv("SELL_MAX_REWARD", "5")

	_, err := load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sell reward range")
}

func TestGet_UsesTestConfig(t *testing.T) {
	defer ResetConfig()

	testCfg := NewTestConfig()
	testCfg.StartingBalance = 75
	SetTestConfig(testCfg)

	assert.Same(t, testCfg, Get())
}

func TestLoadForAdmin_DoesNotRequireToken(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432")

	cfg, err := LoadForAdmin()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432", cfg.DatabaseURL)
	assert.Empty(t, cfg.DiscordToken)

	t.Setenv("DATABASE_URL", "")
	_, err = LoadForAdmin()
	assert.ErrorContains(t, err, "DATABASE_URL is required")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadDotEnv(filepath.Join(dir, "absent.env")))
	})

	t.Run("malformed file is reported", func(t *testing.T) {
		path := filepath.Join(dir, "bad.env")
		require.NoError(t, os.WriteFile(path, []byte("COMMAND_PREFIX=\"unterminated\n"), 0o600))

		err := loadDotEnv(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load env file")
	})

	t.Run("valid file sets unset variables", func(t *testing.T) {
		t.Setenv("SQUIDBOT_DOTENV_CHECK", "")
		require.NoError(t, os.Unsetenv("SQUIDBOT_DOTENV_CHECK"))

		path := filepath.Join(dir, "good.env")
		require.NoError(t, os.WriteFile(path, []byte("SQUIDBOT_DOTENV_CHECK=loaded\n"), 0o600))

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "loaded", os.Getenv("SQUIDBOT_DOTENV_CHECK"))
	})
}
