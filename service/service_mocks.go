package service

import (
	"context"

	"squidbot/models"

	"github.com/stretchr/testify/mock"
)

// MockGamblingService is a mock implementation of GamblingService
type MockGamblingService struct {
	mock.Mock
}

func (m *MockGamblingService) PlaceGamble(ctx context.Context, discordID int64, amount, multiplier int64, predictWin bool) (*models.PendingGamble, error) {
	args := m.Called(ctx, discordID, amount, multiplier, predictWin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PendingGamble), args.Error(1)
}

func (m *MockGamblingService) SettleGamble(ctx context.Context, discordID int64, won bool) (*models.Settlement, error) {
	args := m.Called(ctx, discordID, won)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Settlement), args.Error(1)
}

func (m *MockGamblingService) CancelGamble(ctx context.Context, discordID int64) (*models.PendingGamble, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PendingGamble), args.Error(1)
}

// MockShopService is a mock implementation of ShopService
type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) SellItem(ctx context.Context, discordID int64, item string) (*models.SaleResult, error) {
	args := m.Called(ctx, discordID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SaleResult), args.Error(1)
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context, discordID int64) (*models.GambleStats, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GambleStats), args.Error(1)
}

func (m *MockStatsService) GetLeaderboard(ctx context.Context, stat models.StatName, limit int) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx, stat, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

// MockBalanceService is a mock implementation of BalanceService
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetBalance(ctx context.Context, discordID int64) (int64, error) {
	args := m.Called(ctx, discordID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceService) AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error) {
	args := m.Called(ctx, discordID, delta)
	return args.Get(0).(int64), args.Error(1)
}
