package service

import (
	"context"

	"squidbot/events"
	"squidbot/models"
)

// BalanceRepository defines the interface for balance data access
type BalanceRepository interface {
	// GetBalance returns the stored balance, or the starting balance when the user has no row
	GetBalance(ctx context.Context, discordID int64) (int64, error)

	// AdjustBalance adds delta to the balance, creating the row from the starting
	// balance if needed, and returns the new balance. No bounds are enforced.
	AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error)
}

// PendingGambleRepository defines the interface for pending gamble data access
type PendingGambleRepository interface {
	// Get returns the user's pending gamble, or nil if there is none
	Get(ctx context.Context, discordID int64) (*models.PendingGamble, error)

	// Put stores the pending gamble, replacing any existing one
	Put(ctx context.Context, gamble *models.PendingGamble) error

	// Clear deletes the user's pending gamble and reports whether one existed
	Clear(ctx context.Context, discordID int64) (bool, error)
}

// SoldItemRepository defines the interface for sold item data access
type SoldItemRepository interface {
	// HasSold reports whether the user already sold the item
	HasSold(ctx context.Context, discordID int64, item string) (bool, error)

	// RecordSold marks the item as sold, returning ErrItemAlreadySold if it already was
	RecordSold(ctx context.Context, discordID int64, item string) error
}

// StatsRepository defines the interface for gamble statistics
type StatsRepository interface {
	// RecordOutcome applies a single outcome to the user's counters
	RecordOutcome(ctx context.Context, discordID int64, outcome models.Outcome) error

	// GetStats returns the user's counters, all zero when absent
	GetStats(ctx context.Context, discordID int64) (*models.GambleStats, error)

	// TopN returns up to n users ordered by stat descending
	TopN(ctx context.Context, stat models.StatName, n int) ([]*models.LeaderboardEntry, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes pending events
	Commit() error

	// Rollback rolls back the transaction; a no-op after Commit
	Rollback() error

	// LockUser serialises transactions touching the same user until commit or rollback
	LockUser(ctx context.Context, discordID int64) error

	// Repository getters
	BalanceRepository() BalanceRepository
	PendingGambleRepository() PendingGambleRepository
	SoldItemRepository() SoldItemRepository
	StatsRepository() StatsRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// GamblingService defines the interface for pending gamble operations
type GamblingService interface {
	// PlaceGamble stores a pending gamble after validating the stake against the balance
	PlaceGamble(ctx context.Context, discordID int64, amount, multiplier int64, predictWin bool) (*models.PendingGamble, error)

	// SettleGamble pays out the pending gamble against the declared result
	SettleGamble(ctx context.Context, discordID int64, won bool) (*models.Settlement, error)

	// CancelGamble discards the pending gamble without touching balance or stats
	CancelGamble(ctx context.Context, discordID int64) (*models.PendingGamble, error)
}

// ShopService defines the interface for selling items
type ShopService interface {
	// SellItem sells an item once per user for a random reward
	SellItem(ctx context.Context, discordID int64, item string) (*models.SaleResult, error)
}

// StatsService defines the interface for statistics operations
type StatsService interface {
	// GetStats returns the user's gamble stats
	GetStats(ctx context.Context, discordID int64) (*models.GambleStats, error)

	// GetLeaderboard returns the top users for a stat
	GetLeaderboard(ctx context.Context, stat models.StatName, limit int) ([]*models.LeaderboardEntry, error)
}

// BalanceService defines the interface for balance operations
type BalanceService interface {
	// GetBalance returns the user's current balance
	GetBalance(ctx context.Context, discordID int64) (int64, error)

	// AdjustBalance applies an administrative balance change
	AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error)
}
