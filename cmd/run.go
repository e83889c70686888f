package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"casino/bot"
	"casino/config"
	"casino/events"
	"casino/metrics"
	"casino/service"
	"casino/session"
	"casino/store"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting casino bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize event bus
	eventBus := events.NewBus()

	// Open the economy data file
	log.Infof("Opening data file %s...", cfg.DataFile)
	economy, err := store.Open(cfg.DataFile, cfg.StartingBalance, eventBus)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}

	// Expose Prometheus metrics when an address is configured
	metrics.Register(eventBus)
	if cfg.MetricsAddr != "" {
		go metrics.Serve(cfg.MetricsAddr)
	}

	// Initialize game sessions and services
	sessions := session.NewManager()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	games := service.NewGameService(economy, sessions, eventBus, rng)

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:        cfg.DiscordToken,
		GuildID:      cfg.DiscordGuildID,
		AdminRoleIDs: cfg.AdminRoleIDs,
	}
	discordBot, err := bot.New(botConfig, games, economy, sessions)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	// Give in-flight event handlers time to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
