package service

import (
	"context"
	"fmt"

	"squidbot/events"
	"squidbot/models"
)

type gamblingService struct {
	uowFactory UnitOfWorkFactory
}

// NewGamblingService creates a new gambling service
func NewGamblingService(uowFactory UnitOfWorkFactory) GamblingService {
	return &gamblingService{
		uowFactory: uowFactory,
	}
}

func (s *gamblingService) PlaceGamble(ctx context.Context, discordID int64, amount, multiplier int64, predictWin bool) (*models.PendingGamble, error) {
	if err := validateStake(amount, multiplier); err != nil {
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

	balance, err := uow.BalanceRepository().GetBalance(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if balance < amount {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, balance, amount)
	}

	existing, err := uow.PendingGambleRepository().Get(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending gamble: %w", err)
	}
	if existing != nil {
		return nil, ErrPendingGambleExists
	}

	gamble := &models.PendingGamble{
		DiscordID:  discordID,
		Amount:     amount,
		Multiplier: multiplier,
		PredictWin: predictWin,
	}
	if err := uow.PendingGambleRepository().Put(ctx, gamble); err != nil {
		return nil, fmt.Errorf("failed to store pending gamble: %w", err)
	}

	uow.EventBus().Publish(events.GamblePlacedEvent{
		UserID:     discordID,
		Amount:     amount,
		Multiplier: multiplier,
		PredictWin: predictWin,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return gamble, nil
}

// SettleGamble resolves the pending gamble against the declared result. The
// balance change, the stats update and the removal of the pending gamble
// commit together or not at all.
func (s *gamblingService) SettleGamble(ctx context.Context, discordID int64, resultWin bool) (*models.Settlement, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.LockUser(ctx, discordID); err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}

	pending, err := uow.PendingGambleRepository().Get(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending gamble: %w", err)
	}
	if pending == nil {
		return nil, ErrNoPendingGamble
	}

	won := pending.PredictWin == resultWin
	stake := pending.Stake()
	delta := stake
	if !won {
		delta = -stake
	}

	newBalance, err := uow.BalanceRepository().AdjustBalance(ctx, discordID, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust balance: %w", err)
	}

	outcome := models.SettlementOutcome(won, pending.PredictWin, stake)
	if err := uow.StatsRepository().RecordOutcome(ctx, discordID, outcome); err != nil {
		return nil, fmt.Errorf("failed to record outcome: %w", err)
	}

	cleared, err := uow.PendingGambleRepository().Clear(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear pending gamble: %w", err)
	}
	if !cleared {
		return nil, ErrNoPendingGamble
	}

	uow.EventBus().Publish(events.GambleSettledEvent{
		UserID:     discordID,
		Won:        won,
		PredictWin: pending.PredictWin,
		Stake:      stake,
		NewBalance: newBalance,
	})
	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:       discordID,
		ChangeAmount: delta,
		NewBalance:   newBalance,
		Reason:       "payout",
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.Settlement{
		Won:        won,
		PredictWin: pending.PredictWin,
		Stake:      stake,
		NewBalance: newBalance,
	}, nil
}

func (s *gamblingService) CancelGamble(ctx context.Context, discordID int64) (*models.PendingGamble, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.LockUser(ctx, discordID); err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}

	pending, err := uow.PendingGambleRepository().Get(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending gamble: %w", err)
	}
	if pending == nil {
		return nil, ErrNoPendingGamble
	}

	if _, err := uow.PendingGambleRepository().Clear(ctx, discordID); err != nil {
		return nil, fmt.Errorf("failed to clear pending gamble: %w", err)
	}

	uow.EventBus().Publish(events.GambleCanceledEvent{
		UserID: discordID,
		Amount: pending.Amount,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return pending, nil
}
