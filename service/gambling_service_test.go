package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"squidbot/events"
	"squidbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = int64(123456)

type serviceMocks struct {
	factory *MockUnitOfWorkFactory
	uow     *MockUnitOfWork
	balance *MockBalanceRepository
	pending *MockPendingGambleRepository
	sold    *MockSoldItemRepository
	stats   *MockStatsRepository
}

// newServiceMocks wires a mock unit of work that expects Begin, LockUser and
// the deferred Rollback. Commit expectations are left to each test.
func newServiceMocks(ctx context.Context) *serviceMocks {
	m := &serviceMocks{
		factory: new(MockUnitOfWorkFactory),
		balance: new(MockBalanceRepository),
		pending: new(MockPendingGambleRepository),
		sold:    new(MockSoldItemRepository),
		stats:   new(MockStatsRepository),
	}
	m.uow = NewMockUnitOfWork(m.balance, m.pending, m.sold, m.stats)

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("LockUser", ctx, testUserID).Return(nil).Maybe()
	m.uow.On("Rollback").Return(nil)

	return m
}

func (m *serviceMocks) assertExpectations(t *testing.T) {
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.balance.AssertExpectations(t)
	m.pending.AssertExpectations(t)
	m.sold.AssertExpectations(t)
	m.stats.AssertExpectations(t)
}

func TestGamblingService_PlaceGamble_Success(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(ctx)
	service := NewGamblingService(m.factory)

	m.balance.On("GetBalance", ctx, testUserID).Return(int64(50), nil)
	m.pending.On("Get", ctx, testUserID).Return(nil, nil)
	m.pending.On("Put", ctx, mock.MatchedBy(func(g *models.PendingGamble) bool {
		return g.DiscordID == testUserID &&
			g.Amount == 10 &&
			g.Multiplier == 2 &&
			g.PredictWin
	})).Return(nil)
	m.uow.On("Commit").Return(nil)

	gamble, err := service.PlaceGamble(ctx, testUserID, 10, 2, true)

	require.NoError(t, err)
	assert.Equal(t, int64(20), gamble.Stake())
	require.Len(t, m.uow.PublishedEvents(), 1)
	assert.Equal(t, events.GamblePlacedEvent{UserID: testUserID, Amount: 10, Multiplier: 2, PredictWin: true}, m.uow.PublishedEvents()[0])
	m.assertExpectations(t)
}

func TestGamblingService_PlaceGamble_InvalidArguments(t *testing.T) {
	ctx := context.Background()
	mockFactory := new(MockUnitOfWorkFactory)
	service := NewGamblingService(mockFactory)

	tests := []struct {
		name       string
		amount     int64
		multiplier int64
		expected   error
	}{
		{"zero amount", 0, 2, ErrInvalidAmount},
		{"negative amount", -10, 2, ErrInvalidAmount},
		{"zero multiplier", 10, 0, ErrInvalidAmount},
		{"negative multiplier", 10, -1, ErrInvalidAmount},
		{"overflowing stake", math.MaxInt64 / 2, 3, ErrStakeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gamble, err := service.PlaceGamble(ctx, testUserID, tt.amount, tt.multiplier, true)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, gamble)
		})
	}

	mockFactory.AssertNotCalled(t, "Create")
}

func TestGamblingService_PlaceGamble_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(ctx)
	service := NewGamblingService(m.factory)

	m.balance.On("GetBalance", ctx, testUserID).Return(int64(50), nil)

	gamble, err := service.PlaceGamble(ctx, testUserID, 100, 2, true)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "have 50, need 100")
	assert.Nil(t, gamble)
	m.pending.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit")
	m.assertExpectations(t)
}

func TestGamblingService_PlaceGamble_BalanceEqualToAmountIsAllowed(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(ctx)
	service := NewGamblingService(m.factory)

	m.balance.On("GetBalance", ctx, testUserID).Return(int64(50), nil)
	m.pending.On("Get", ctx, testUserID).Return(nil, nil)
	m.pending.On("Put", ctx, mock.Anything).Return(nil)
	m.uow.On("Commit").Return(nil)

	_, err := service.PlaceGamble(ctx, testUserID, 50, 10, false)

	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestGamblingService_PlaceGamble_PendingGambleExists(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(ctx)
	service := NewGamblingService(m.factory)

	existing := &models.PendingGamble{DiscordID: testUserID, Amount: 10, Multiplier: 3, PredictWin: false}
	m.balance.On("GetBalance", ctx, testUserID).Return(int64(500), nil)
	m.pending.On("Get", ctx, testUserID).Return(existing, nil)

	gamble, err := service.PlaceGamble(ctx, testUserID, 20, 2, true)

	assert.ErrorIs(t, err, ErrPendingGambleExists)
	assert.Nil(t, gamble)
	m.pending.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit")
	assert.Empty(t, m.uow.PublishedEvents())
	m.assertExpectations(t)
}

func TestGamblingService_SettleGamble(t *testing.T) {
	tests := []struct {
		name          string
		predictWin    bool
		resultWin     bool
		expectWon     bool
		expectDelta   int64
		expectOutcome models.Outcome
	}{
		{
			name:          "predicted win and won",
			predictWin:    true,
			resultWin:     true,
			expectWon:     true,
			expectDelta:   200,
			expectOutcome: models.Outcome{Won: true, PredictedWin: true, AmountWon: 200},
		},
		{
			name:          "predicted win and lost",
			predictWin:    true,
			resultWin:     false,
			expectWon:     false,
			expectDelta:   -200,
			expectOutcome: models.Outcome{Won: false, PredictedWin: true, AmountLost: 200},
		},
		{
			name:          "predicted lose and lost",
			predictWin:    false,
			resultWin:     false,
			expectWon:     true,
			expectDelta:   200,
			expectOutcome: models.Outcome{Won: true, PredictedWin: false, AmountWon: 200},
		},
		{
			name:          "predicted lose and won",
			predictWin:    false,
			resultWin:     true,
			expectWon:     false,
			expectDelta:   -200,
			expectOutcome: models.Outcome{Won: false, PredictedWin: false, AmountLost: 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			m := newServiceMocks(ctx)
			service := NewGamblingService(m.factory)

			pending := &models.PendingGamble{DiscordID: testUserID, Amount: 100, Multiplier: 2, PredictWin: tt.predictWin}
			newBalance := 500 + tt.expectDelta

			m.pending.On("Get", ctx, testUserID).Return(pending, nil)
			m.balance.On("AdjustBalance", ctx, testUserID, tt.expectDelta).Return(newBalance, nil)
			m.stats.On("RecordOutcome", ctx, testUserID, tt.expectOutcome).Return(nil)
			m.pending.On("Clear", ctx, testUserID).Return(true, nil)
			m.uow.On("Commit").Return(nil)

			settlement, err := service.SettleGamble(ctx, testUserID, tt.resultWin)

			require.NoError(t, err)
			assert.Equal(t, tt.expectWon, settlement.Won)
			assert.Equal(t, tt.predictWin, settlement.PredictWin)
			assert.Equal(t, int64(200), settlement.Stake)
			assert.Equal(t, newBalance, settlement.NewBalance)

			require.Len(t, m.uow.PublishedEvents(), 2)
			settled, ok := m.uow.PublishedEvents()[0].(events.GambleSettledEvent)
			require.True(t, ok)
			assert.Equal(t, tt.expectWon, settled.Won)
			m.assertExpectations(t)
		})
	}
}

func TestGamblingService_SettleGamble_NoPendingGamble(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(ctx)
	service := NewGamblingService(m.factory)

	m.pending.On("Get", ctx, testUserID).Return(nil, nil)

	settlement, err := service.SettleGamble(ctx, testUserID, true)

	assert.ErrorIs(t, err, ErrNoPendingGamble)
	assert.Nil(t, settlement)
	m.balance.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	m.stats.AssertNotCalled(t, "RecordOutcome", mock.Anything, mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit")
	m.assertExpectations(t)
}

func TestGamblingService_SettleGamble_StatsFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(ctx)
	service := NewGamblingService(m.factory)

	pending := &models.PendingGamble{DiscordID: testUserID, Amount: 100, Multiplier: 2, PredictWin: true}
	m.pending.On("Get", ctx, testUserID).Return(pending, nil)
	m.balance.On("AdjustBalance", ctx, testUserID, int64(200)).Return(int64(250), nil)
	m.stats.On("RecordOutcome", ctx, testUserID, mock.Anything).Return(errors.New("database error"))

	settlement, err := service.SettleGamble(ctx, testUserID, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record outcome")
	assert.Nil(t, settlement)
	m.pending.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit")
	m.uow.AssertCalled(t, "Rollback")
	m.assertExpectations(t)
}

func TestGamblingService_SettleGamble_ConcurrentlyConsumed(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(ctx)
	service := NewGamblingService(m.factory)

	pending := &models.PendingGamble{DiscordID: testUserID, Amount: 5, Multiplier: 1, PredictWin: true}
	m.pending.On("Get", ctx, testUserID).Return(pending, nil)
	m.balance.On("AdjustBalance", ctx, testUserID, int64(5)).Return(int64(55), nil)
	m.stats.On("RecordOutcome", ctx, testUserID, mock.Anything).Return(nil)
	m.pending.On("Clear", ctx, testUserID).Return(false, nil)

	_, err := service.SettleGamble(ctx, testUserID, true)

	assert.ErrorIs(t, err, ErrNoPendingGamble)
	m.uow.AssertNotCalled(t, "Commit")
	m.assertExpectations(t)
}

func TestGamblingService_CancelGamble(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(ctx)
	service := NewGamblingService(m.factory)

	pending := &models.PendingGamble{DiscordID: testUserID, Amount: 100, Multiplier: 2, PredictWin: true}
	m.pending.On("Get", ctx, testUserID).Return(pending, nil)
	m.pending.On("Clear", ctx, testUserID).Return(true, nil)
	m.uow.On("Commit").Return(nil)

	canceled, err := service.CancelGamble(ctx, testUserID)

	require.NoError(t, err)
	assert.Equal(t, pending, canceled)
	m.balance.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	m.stats.AssertNotCalled(t, "RecordOutcome", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []events.Event{events.GambleCanceledEvent{UserID: testUserID, Amount: 100}}, m.uow.PublishedEvents())
	m.assertExpectations(t)
}

func TestGamblingService_CancelGamble_NothingToCancel(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(ctx)
	service := NewGamblingService(m.factory)

	m.pending.On("Get", ctx, testUserID).Return(nil, nil)

	canceled, err := service.CancelGamble(ctx, testUserID)

	assert.ErrorIs(t, err, ErrNoPendingGamble)
	assert.Nil(t, canceled)
	m.pending.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}
