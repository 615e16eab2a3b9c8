package repository

import (
	"context"
	"errors"
	"fmt"

	"squidbot/database"
	"squidbot/models"

	"github.com/jackc/pgx/v5"
)

// statColumns maps each stat to its column. Only names found here are ever
// interpolated into SQL.
var statColumns = map[models.StatName]string{
	models.StatWins:       "wins",
	models.StatLosses:     "losses",
	models.StatBetsWon:    "bets_won",
	models.StatAmountWon:  "amount_won",
	models.StatAmountLost: "amount_lost",
	models.StatItemsSold:  "items_sold",
}

// StatsRepository implements the StatsRepository interface
type StatsRepository struct {
	q queryable
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{q: db.Pool}
}

func newStatsRepositoryWithTx(tx queryable) *StatsRepository {
	return &StatsRepository{q: tx}
}

// RecordOutcome applies a single outcome to the user's counters, creating the row if needed
func (r *StatsRepository) RecordOutcome(ctx context.Context, discordID int64, outcome models.Outcome) error {
	var wins, losses, betsWon, itemsSold int64
	switch {
	case outcome.ItemSold:
		itemsSold = 1
	case outcome.Won:
		wins = 1
	default:
		losses = 1
	}
	if !outcome.ItemSold && outcome.PredictedWin {
		betsWon = 1
	}

	query := `
		INSERT INTO gamble_stats (user_id, wins, losses, bets_won, amount_won, amount_lost, items_sold)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET wins = gamble_stats.wins + EXCLUDED.wins,
		    losses = gamble_stats.losses + EXCLUDED.losses,
		    bets_won = gamble_stats.bets_won + EXCLUDED.bets_won,
		    amount_won = gamble_stats.amount_won + EXCLUDED.amount_won,
		    amount_lost = gamble_stats.amount_lost + EXCLUDED.amount_lost,
		    items_sold = gamble_stats.items_sold + EXCLUDED.items_sold
	`

	_, err := r.q.Exec(ctx, query,
		discordID,
		wins,
		losses,
		betsWon,
		outcome.AmountWon,
		outcome.AmountLost,
		itemsSold,
	)
	if err != nil {
		return fmt.Errorf("failed to record outcome for user %d: %w", discordID, err)
	}

	return nil
}

// GetStats returns the user's counters, all zero if the user has no row
func (r *StatsRepository) GetStats(ctx context.Context, discordID int64) (*models.GambleStats, error) {
	query := `
		SELECT user_id, wins, losses, bets_won, amount_won, amount_lost, items_sold
		FROM gamble_stats
		WHERE user_id = $1
	`

	stats := &models.GambleStats{DiscordID: discordID}
	err := r.q.QueryRow(ctx, query, discordID).Scan(
		&stats.DiscordID,
		&stats.Wins,
		&stats.Losses,
		&stats.BetsWon,
		&stats.AmountWon,
		&stats.AmountLost,
		&stats.ItemsSold,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return &models.GambleStats{DiscordID: discordID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for user %d: %w", discordID, err)
	}

	return stats, nil
}

// TopN returns up to n users ordered by the stat descending. Ties are broken
// by user id so the ordering is stable.
func (r *StatsRepository) TopN(ctx context.Context, stat models.StatName, n int) ([]*models.LeaderboardEntry, error) {
	column, ok := statColumns[stat]
	if !ok {
		return nil, fmt.Errorf("unknown stat %q", stat)
	}

	query := fmt.Sprintf(`
		SELECT user_id, %s
		FROM gamble_stats
		ORDER BY %s DESC, user_id ASC
		LIMIT $1
	`, column, column)

	rows, err := r.q.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard for %s: %w", stat, err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	for rows.Next() {
		entry := &models.LeaderboardEntry{Rank: len(entries) + 1}
		if err := rows.Scan(&entry.DiscordID, &entry.Value); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaderboard rows: %w", err)
	}

	return entries, nil
}
