package service

import (
	"context"
	"fmt"

	"squidbot/models"
)

type statsService struct {
	uowFactory UnitOfWorkFactory
}

// NewStatsService creates a new stats service
func NewStatsService(uowFactory UnitOfWorkFactory) StatsService {
	return &statsService{
		uowFactory: uowFactory,
	}
}

func (s *statsService) GetStats(ctx context.Context, discordID int64) (*models.GambleStats, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	stats, err := uow.StatsRepository().GetStats(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func (s *statsService) GetLeaderboard(ctx context.Context, stat models.StatName, limit int) ([]*models.LeaderboardEntry, error) {
	if err := validateStat(stat); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	entries, err := uow.StatsRepository().TopN(ctx, stat, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard for %s: %w", stat, err)
	}

	return entries, nil
}
