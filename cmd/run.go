package cmd

import (
	"context"
	"fmt"
	"time"

	"squidbot/bot"
	"squidbot/config"
	"squidbot/database"
	"squidbot/events"
	"squidbot/metrics"
	"squidbot/repository"
	"squidbot/server"
	"squidbot/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	if err := ConfigureLogging(cfg); err != nil {
		return err
	}

	log.WithField("environment", cfg.Environment).Info("Starting squidbot...")

	// Apply pending migrations before anything touches the tables
	if err := database.RunMigrationsWithURL(cfg.GetDatabaseURL()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully")

	// Event bus and its subscribers
	eventBus := events.NewBus()
	metrics.NewEventMetricsCollector().Register(eventBus)
	events.RegisterAuditLog(eventBus)

	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus, cfg.StartingBalance)

	services := bot.Services{
		Gambling: service.NewGamblingService(uowFactory),
		Shop:     service.NewShopService(uowFactory, cfg.SellMinReward, cfg.SellMaxReward),
		Stats:    service.NewStatsService(uowFactory),
		Balance:  service.NewBalanceService(uowFactory),
	}

	var opsServer *server.Server
	if cfg.MetricsAddr != "" {
		opsServer = server.NewServer(cfg.MetricsAddr, db)
		go func() {
			if err := opsServer.Start(); err != nil {
				log.WithError(err).Error("Operational server stopped")
			}
		}()
	}

	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:           cfg.DiscordToken,
		CommandPrefix:   cfg.CommandPrefix,
		LeaderboardSize: cfg.LeaderboardSize,
	}, services)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.WithField("prefix", cfg.CommandPrefix).Info("Discord bot initialized successfully")

	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	if opsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := opsServer.Stop(shutdownCtx); err != nil {
			log.WithError(err).Error("Error stopping operational server")
		}
	}

	log.Info("Shutdown completed")
	return nil
}
