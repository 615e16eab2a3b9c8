package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"squidbot/events"
	"squidbot/models"
)

type shopService struct {
	uowFactory UnitOfWorkFactory
	minReward  int64
	maxReward  int64
	roll       func(n int64) int64 // uniform in [0, n)
}

// NewShopService creates a new shop service paying rewards uniformly in [minReward, maxReward]
func NewShopService(uowFactory UnitOfWorkFactory, minReward, maxReward int64) ShopService {
	return &shopService{
		uowFactory: uowFactory,
		minReward:  minReward,
		maxReward:  maxReward,
		roll:       rand.Int64N,
	}
}

func (s *shopService) drawReward() int64 {
	return s.minReward + s.roll(s.maxReward-s.minReward+1)
}

func (s *shopService) SellItem(ctx context.Context, discordID int64, item string) (*models.SaleResult, error) {
	item, err := normalizeItemName(item)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.LockUser(ctx, discordID); err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}

	sold, err := uow.SoldItemRepository().HasSold(ctx, discordID, item)
	if err != nil {
		return nil, fmt.Errorf("failed to check sold items: %w", err)
	}
	if sold {
		return nil, ErrItemAlreadySold
	}

	reward := s.drawReward()

	newBalance, err := uow.BalanceRepository().AdjustBalance(ctx, discordID, reward)
	if err != nil {
		return nil, fmt.Errorf("failed to credit sale: %w", err)
	}

	if err := uow.SoldItemRepository().RecordSold(ctx, discordID, item); err != nil {
		return nil, fmt.Errorf("failed to record sold item: %w", err)
	}

	if err := uow.StatsRepository().RecordOutcome(ctx, discordID, models.SaleOutcome()); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	uow.EventBus().Publish(events.ItemSoldEvent{
		UserID: discordID,
		Item:   item,
		Reward: reward,
	})
	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:       discordID,
		ChangeAmount: reward,
		NewBalance:   newBalance,
		Reason:       "sell",
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.SaleResult{
		Item:       item,
		Reward:     reward,
		NewBalance: newBalance,
	}, nil
}
