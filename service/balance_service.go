package service

import (
	"context"
	"fmt"

	"squidbot/events"
)

type balanceService struct {
	uowFactory UnitOfWorkFactory
}

// NewBalanceService creates a new balance service
func NewBalanceService(uowFactory UnitOfWorkFactory) BalanceService {
	return &balanceService{
		uowFactory: uowFactory,
	}
}

func (s *balanceService) GetBalance(ctx context.Context, discordID int64) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	balance, err := uow.BalanceRepository().GetBalance(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance, nil
}

func (s *balanceService) AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error) {
	if delta == 0 {
		return 0, ErrInvalidAmount
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.LockUser(ctx, discordID); err != nil {
		return 0, fmt.Errorf("failed to lock user: %w", err)
	}

	newBalance, err := uow.BalanceRepository().AdjustBalance(ctx, discordID, delta)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance: %w", err)
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:       discordID,
		ChangeAmount: delta,
		NewBalance:   newBalance,
		Reason:       "admin",
	})

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return newBalance, nil
}
