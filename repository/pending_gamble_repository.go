package repository

import (
	"context"
	"errors"
	"fmt"

	"squidbot/database"
	"squidbot/models"

	"github.com/jackc/pgx/v5"
)

// PendingGambleRepository implements the PendingGambleRepository interface
type PendingGambleRepository struct {
	q queryable
}

// NewPendingGambleRepository creates a new pending gamble repository
func NewPendingGambleRepository(db *database.DB) *PendingGambleRepository {
	return &PendingGambleRepository{q: db.Pool}
}

func newPendingGambleRepositoryWithTx(tx queryable) *PendingGambleRepository {
	return &PendingGambleRepository{q: tx}
}

// Get returns the user's pending gamble, or nil if there is none
func (r *PendingGambleRepository) Get(ctx context.Context, discordID int64) (*models.PendingGamble, error) {
	query := `
		SELECT user_id, amount, multiplier, predict_win, created_at
		FROM pending_gambles
		WHERE user_id = $1
	`

	var gamble models.PendingGamble
	err := r.q.QueryRow(ctx, query, discordID).Scan(
		&gamble.DiscordID,
		&gamble.Amount,
		&gamble.Multiplier,
		&gamble.PredictWin,
		&gamble.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pending gamble for user %d: %w", discordID, err)
	}

	return &gamble, nil
}

// Put stores the pending gamble, replacing any existing one for the user
func (r *PendingGambleRepository) Put(ctx context.Context, gamble *models.PendingGamble) error {
	query := `
		INSERT INTO pending_gambles (user_id, amount, multiplier, predict_win)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET amount = EXCLUDED.amount,
		    multiplier = EXCLUDED.multiplier,
		    predict_win = EXCLUDED.predict_win,
		    created_at = NOW()
		RETURNING created_at
	`

	err := r.q.QueryRow(ctx, query, gamble.DiscordID, gamble.Amount, gamble.Multiplier, gamble.PredictWin).Scan(&gamble.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store pending gamble for user %d: %w", gamble.DiscordID, err)
	}

	return nil
}

// Clear deletes the user's pending gamble and reports whether one existed
func (r *PendingGambleRepository) Clear(ctx context.Context, discordID int64) (bool, error) {
	result, err := r.q.Exec(ctx, `DELETE FROM pending_gambles WHERE user_id = $1`, discordID)
	if err != nil {
		return false, fmt.Errorf("failed to clear pending gamble for user %d: %w", discordID, err)
	}

	return result.RowsAffected() > 0, nil
}
