package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"squidbot/cmd"
	"squidbot/database"

	log "github.com/sirupsen/logrus"
)

func main() {
	// Check for migration subcommands
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := handleMigrationCommand(); err != nil {
			log.Fatal("Migration error: ", err)
		}
		return
	}

	// Check for balance adjustment subcommand
	if len(os.Args) > 1 && os.Args[1] == "adjust-balance" {
		if len(os.Args) < 4 {
			log.Fatal("usage: squidbot adjust-balance <user-id> <delta>")
		}
		if err := cmd.AdjustBalance(context.Background(), os.Args[2], os.Args[3]); err != nil {
			log.Fatal("Balance adjustment error: ", err)
		}
		return
	}

	// Normal bot operation
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Run(ctx); err != nil {
		log.Fatal("Application error: ", err)
	}
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: squidbot migrate [up|down|status] [args...]")
	}

	command := os.Args[2]
	switch command {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(os.Args) > 3 {
			steps = os.Args[3]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}
