package repository

import (
	"context"
	"fmt"

	"squidbot/database"
	"squidbot/service"
)

// SoldItemRepository implements the SoldItemRepository interface
type SoldItemRepository struct {
	q queryable
}

// NewSoldItemRepository creates a new sold item repository
func NewSoldItemRepository(db *database.DB) *SoldItemRepository {
	return &SoldItemRepository{q: db.Pool}
}

func newSoldItemRepositoryWithTx(tx queryable) *SoldItemRepository {
	return &SoldItemRepository{q: tx}
}

// HasSold reports whether the user already sold the item
func (r *SoldItemRepository) HasSold(ctx context.Context, discordID int64, item string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM sold_items WHERE user_id = $1 AND item = $2)`

	var exists bool
	if err := r.q.QueryRow(ctx, query, discordID, item).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check sold item %q for user %d: %w", item, discordID, err)
	}

	return exists, nil
}

// RecordSold marks the item as sold. Selling the same item twice returns
// service.ErrItemAlreadySold rather than a constraint violation.
func (r *SoldItemRepository) RecordSold(ctx context.Context, discordID int64, item string) error {
	query := `
		INSERT INTO sold_items (user_id, item)
		VALUES ($1, $2)
		ON CONFLICT (user_id, item) DO NOTHING
	`

	result, err := r.q.Exec(ctx, query, discordID, item)
	if err != nil {
		return fmt.Errorf("failed to record sold item %q for user %d: %w", item, discordID, err)
	}
	if result.RowsAffected() == 0 {
		return service.ErrItemAlreadySold
	}

	return nil
}
