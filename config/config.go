package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Economy configuration
	DataFile        string // path of the JSON economy file
	StartingBalance int64

	// Admin configuration
	AdminRoleIDs []string // role IDs allowed to run admin commands

	// Metrics configuration
	MetricsAddr string // empty disables the metrics endpoint

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Economy settings with defaults
		DataFile:        "economy_data.json",
		StartingBalance: 1000,

		// Metrics
		MetricsAddr: os.Getenv("METRICS_ADDR"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if dataFile := os.Getenv("DATA_FILE"); dataFile != "" {
		config.DataFile = dataFile
	}
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsedBalance, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsedBalance
		}
	}

	// Parse admin role IDs
	if roleIDs := os.Getenv("ADMIN_ROLE_IDS"); roleIDs != "" {
		for _, idStr := range strings.Split(roleIDs, ",") {
			idStr = strings.TrimSpace(idStr)
			if idStr != "" {
				config.AdminRoleIDs = append(config.AdminRoleIDs, idStr)
			}
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
	}

	return config, nil
}
