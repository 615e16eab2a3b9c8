package service

import (
	"context"

	"squidbot/events"
	"squidbot/models"

	"github.com/stretchr/testify/mock"
)

// MockBalanceRepository is a mock implementation of BalanceRepository
type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) GetBalance(ctx context.Context, discordID int64) (int64, error) {
	args := m.Called(ctx, discordID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceRepository) AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error) {
	args := m.Called(ctx, discordID, delta)
	return args.Get(0).(int64), args.Error(1)
}

// MockPendingGambleRepository is a mock implementation of PendingGambleRepository
type MockPendingGambleRepository struct {
	mock.Mock
}

func (m *MockPendingGambleRepository) Get(ctx context.Context, discordID int64) (*models.PendingGamble, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PendingGamble), args.Error(1)
}

func (m *MockPendingGambleRepository) Put(ctx context.Context, gamble *models.PendingGamble) error {
	args := m.Called(ctx, gamble)
	return args.Error(0)
}

func (m *MockPendingGambleRepository) Clear(ctx context.Context, discordID int64) (bool, error) {
	args := m.Called(ctx, discordID)
	return args.Bool(0), args.Error(1)
}

// MockSoldItemRepository is a mock implementation of SoldItemRepository
type MockSoldItemRepository struct {
	mock.Mock
}

func (m *MockSoldItemRepository) HasSold(ctx context.Context, discordID int64, item string) (bool, error) {
	args := m.Called(ctx, discordID, item)
	return args.Bool(0), args.Error(1)
}

func (m *MockSoldItemRepository) RecordSold(ctx context.Context, discordID int64, item string) error {
	args := m.Called(ctx, discordID, item)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordOutcome(ctx context.Context, discordID int64, outcome models.Outcome) error {
	args := m.Called(ctx, discordID, outcome)
	return args.Error(0)
}

func (m *MockStatsRepository) GetStats(ctx context.Context, discordID int64) (*models.GambleStats, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GambleStats), args.Error(1)
}

func (m *MockStatsRepository) TopN(ctx context.Context, stat models.StatName, n int) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx, stat, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	Events []events.Event
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Events = append(m.Events, event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	balanceRepo       BalanceRepository
	pendingGambleRepo PendingGambleRepository
	soldItemRepo      SoldItemRepository
	statsRepo         StatsRepository
	eventBus          *MockEventPublisher
}

// NewMockUnitOfWork creates a mock unit of work with the given repositories
func NewMockUnitOfWork(balanceRepo BalanceRepository, pendingGambleRepo PendingGambleRepository, soldItemRepo SoldItemRepository, statsRepo StatsRepository) *MockUnitOfWork {
	return &MockUnitOfWork{
		balanceRepo:       balanceRepo,
		pendingGambleRepo: pendingGambleRepo,
		soldItemRepo:      soldItemRepo,
		statsRepo:         statsRepo,
		eventBus:          &MockEventPublisher{},
	}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) LockUser(ctx context.Context, discordID int64) error {
	args := m.Called(ctx, discordID)
	return args.Error(0)
}

func (m *MockUnitOfWork) BalanceRepository() BalanceRepository {
	return m.balanceRepo
}

func (m *MockUnitOfWork) PendingGambleRepository() PendingGambleRepository {
	return m.pendingGambleRepo
}

func (m *MockUnitOfWork) SoldItemRepository() SoldItemRepository {
	return m.soldItemRepo
}

func (m *MockUnitOfWork) StatsRepository() StatsRepository {
	return m.statsRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// PublishedEvents returns the events published through this unit of work
func (m *MockUnitOfWork) PublishedEvents() []events.Event {
	return m.eventBus.Events
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
