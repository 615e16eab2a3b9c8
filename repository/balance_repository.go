package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"squidbot/database"

	"github.com/jackc/pgx/v5"
)

// BalanceRepository implements the BalanceRepository interface
type BalanceRepository struct {
	q               queryable
	startingBalance int64
}

// NewBalanceRepository creates a new balance repository
func NewBalanceRepository(db *database.DB, startingBalance int64) *BalanceRepository {
	return &BalanceRepository{q: db.Pool, startingBalance: startingBalance}
}

func newBalanceRepositoryWithTx(tx queryable, startingBalance int64) *BalanceRepository {
	return &BalanceRepository{q: tx, startingBalance: startingBalance}
}

// GetBalance returns the stored balance, or the starting balance if the user has none
func (r *BalanceRepository) GetBalance(ctx context.Context, discordID int64) (int64, error) {
	query := `SELECT balance FROM user_balances WHERE user_id = $1`

	var balance int64
	err := r.q.QueryRow(ctx, query, discordID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.startingBalance, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for user %d: %w", discordID, err)
	}

	return balance, nil
}

// AdjustBalance adds delta to the user's balance in one statement. A user
// without a row starts from the starting balance, so the read and write
// paths agree on the default.
func (r *BalanceRepository) AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error) {
	if (delta > 0 && r.startingBalance > math.MaxInt64-delta) || (delta < 0 && r.startingBalance < math.MinInt64-delta) {
		return 0, fmt.Errorf("failed to adjust balance for user %d: delta %d out of range", discordID, delta)
	}

	// Each placeholder binds directly to a bigint column; Postgres cannot
	// infer types for an expression like $2 + $3.
	query := `
		INSERT INTO user_balances (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = user_balances.balance + $3, updated_at = NOW()
		RETURNING balance
	`

	var balance int64
	err := r.q.QueryRow(ctx, query, discordID, r.startingBalance+delta, delta).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance for user %d: %w", discordID, err)
	}

	return balance, nil
}
