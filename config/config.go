package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"squidbot/database"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken  string
	CommandPrefix string

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Ledger configuration
	StartingBalance int64 // Balance reported for, and credited to, users with no row yet
	SellMinReward   int64
	SellMaxReward   int64
	LeaderboardSize int

	// Observability
	MetricsAddr string // Empty disables the metrics/health HTTP server
	LogLevel    string
	LogFormat   string // "text" or "json"

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// LoadForAdmin loads the configuration for command line tools that never
// connect to Discord, so DISCORD_TOKEN may be empty. Errors are returned
// rather than panicking as Get does.
func LoadForAdmin() (*Config, error) {
	return loadConfig(false)
}

func load() (*Config, error) {
	return loadConfig(true)
}

// loadConfig reads configuration from an optional .env file, an optional
// config.yaml and the process environment, in increasing order of precedence.
func loadConfig(requireToken bool) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		DiscordToken:    v.GetString("DISCORD_TOKEN"),
		CommandPrefix:   v.GetString("COMMAND_PREFIX"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DatabaseName:    v.GetString("DATABASE_NAME"),
		StartingBalance: v.GetInt64("STARTING_BALANCE"),
		SellMinReward:   v.GetInt64("SELL_MIN_REWARD"),
		SellMaxReward:   v.GetInt64("SELL_MAX_REWARD"),
		LeaderboardSize: v.GetInt("LEADERBOARD_SIZE"),
		MetricsAddr:     v.GetString("METRICS_ADDR"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		Environment:     v.GetString("ENVIRONMENT"),
	}

	if err := config.validate(requireToken); err != nil {
		return nil, err
	}

	return config, nil
}

// loadDotEnv loads the given env files, or .env when none are given. A missing
// file is not an error; an unreadable or malformed one is.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("COMMAND_PREFIX", "$")
	v.SetDefault("STARTING_BALANCE", 50)
	v.SetDefault("SELL_MIN_REWARD", 1)
	v.SetDefault("SELL_MAX_REWARD", 500)
	v.SetDefault("LEADERBOARD_SIZE", 10)
	v.SetDefault("METRICS_ADDR", ":9090")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("ENVIRONMENT", "development")
}

func (c *Config) validate(requireToken bool) error {
	if c.SellMinReward < 1 || c.SellMaxReward < c.SellMinReward {
		return fmt.Errorf("invalid sell reward range [%d, %d]", c.SellMinReward, c.SellMaxReward)
	}
	if c.LeaderboardSize <= 0 {
		return fmt.Errorf("LEADERBOARD_SIZE must be positive")
	}
	if c.CommandPrefix == "" {
		return fmt.Errorf("COMMAND_PREFIX cannot be empty")
	}

	if c.Environment != "test" {
		if requireToken && c.DiscordToken == "" {
			return fmt.Errorf("DISCORD_TOKEN is required")
		}
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	}

	return nil
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		DiscordToken:    "test-token",
		CommandPrefix:   "$",
		StartingBalance: 50,
		SellMinReward:   1,
		SellMaxReward:   500,
		LeaderboardSize: 10,
		LogLevel:        "debug",
		LogFormat:       "text",
		Environment:     "test",
	}
}
