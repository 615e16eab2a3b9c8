package cmd

import (
	"context"
	"fmt"
	"strconv"

	"squidbot/config"
	"squidbot/database"
	"squidbot/events"
	"squidbot/repository"
	"squidbot/service"

	log "github.com/sirupsen/logrus"
)

// AdjustBalance applies a manual balance change for one user outside Discord
func AdjustBalance(ctx context.Context, userIDArg, deltaArg string) error {
	userID, err := strconv.ParseInt(userIDArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", userIDArg, err)
	}
	delta, err := strconv.ParseInt(deltaArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid delta %q: %w", deltaArg, err)
	}

	cfg, err := config.LoadForAdmin()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := ConfigureLogging(cfg); err != nil {
		return err
	}

	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Events are still written to the audit log, nothing else listens here
	eventBus := events.NewBus()
	events.RegisterAuditLog(eventBus)

	balanceService := service.NewBalanceService(repository.NewUnitOfWorkFactory(db, eventBus, cfg.StartingBalance))

	newBalance, err := balanceService.AdjustBalance(ctx, userID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust balance: %w", err)
	}

	log.WithFields(log.Fields{
		"user_id":     userID,
		"delta":       delta,
		"new_balance": newBalance,
	}).Info("Balance adjusted")
	return nil
}
