package repository

import (
	"context"
	"errors"
	"fmt"

	"squidbot/database"
	"squidbot/events"
	"squidbot/service"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db                *database.DB
	tx                pgx.Tx
	ctx               context.Context
	startingBalance   int64
	transactionalBus  *events.TransactionalBus
	balanceRepo       service.BalanceRepository
	pendingGambleRepo service.PendingGambleRepository
	soldItemRepo      service.SoldItemRepository
	statsRepo         service.StatsRepository
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB, eventBus *events.Bus, startingBalance int64) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db:              db,
		eventBus:        eventBus,
		startingBalance: startingBalance,
	}
}

type unitOfWorkFactory struct {
	db              *database.DB
	eventBus        *events.Bus
	startingBalance int64
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{
		db:               f.db,
		startingBalance:  f.startingBalance,
		transactionalBus: events.NewTransactionalBus(f.eventBus),
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.balanceRepo = newBalanceRepositoryWithTx(tx, u.startingBalance)
	u.pendingGambleRepo = newPendingGambleRepositoryWithTx(tx)
	u.soldItemRepo = newSoldItemRepositoryWithTx(tx)
	u.statsRepo = newStatsRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	err := u.tx.Commit(u.ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil

	// Flush pending events after successful commit
	u.transactionalBus.Flush()

	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	// Discard pending events on rollback
	u.transactionalBus.Discard()

	return nil
}

// LockUser takes a transaction-scoped advisory lock on the user id. Two
// commands for the same user run one after the other; the lock is released
// on commit or rollback.
func (u *unitOfWork) LockUser(ctx context.Context, discordID int64) error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to lock user %d in", discordID)
	}

	if _, err := u.tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, discordID); err != nil {
		return fmt.Errorf("failed to lock user %d: %w", discordID, err)
	}

	return nil
}

// BalanceRepository returns the balance repository for this unit of work
func (u *unitOfWork) BalanceRepository() service.BalanceRepository {
	if u.balanceRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.balanceRepo
}

// PendingGambleRepository returns the pending gamble repository for this unit of work
func (u *unitOfWork) PendingGambleRepository() service.PendingGambleRepository {
	if u.pendingGambleRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.pendingGambleRepo
}

// SoldItemRepository returns the sold item repository for this unit of work
func (u *unitOfWork) SoldItemRepository() service.SoldItemRepository {
	if u.soldItemRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.soldItemRepo
}

// StatsRepository returns the stats repository for this unit of work
func (u *unitOfWork) StatsRepository() service.StatsRepository {
	if u.statsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.statsRepo
}

// EventBus returns the transactional event bus for this unit of work
func (u *unitOfWork) EventBus() service.EventPublisher {
	return u.transactionalBus
}
