package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionalBus_FlushDeliversAfterCommit(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	received := make(chan GambleSettledEvent, 1)
	mainBus.Subscribe(EventTypeGambleSettled, func(ctx context.Context, event Event) {
		if settled, ok := event.(GambleSettledEvent); ok {
			received <- settled
		} else {
			t.Errorf("Expected GambleSettledEvent, got %T", event)
		}
	})

	testEvent := GambleSettledEvent{
		UserID:     123456,
		Won:        true,
		PredictWin: true,
		Stake:      200,
		NewBalance: 250,
	}

	transactionalBus.Publish(testEvent)
	assert.Equal(t, 1, transactionalBus.Pending())

	select {
	case <-received:
		t.Fatal("event delivered before flush")
	case <-time.After(50 * time.Millisecond):
	}

	transactionalBus.Flush()
	assert.Equal(t, 0, transactionalBus.Pending())

	select {
	case got := <-received:
		assert.Equal(t, testEvent, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestTransactionalBus_DiscardDropsEvents(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	var mu sync.Mutex
	delivered := 0
	mainBus.Subscribe(EventTypeItemSold, func(ctx context.Context, event Event) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	transactionalBus.Publish(ItemSoldEvent{UserID: 1, Item: "fish", Reward: 10})
	transactionalBus.Discard()
	transactionalBus.Flush()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, delivered)
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(1)
	bus.Subscribe(EventTypeGamblePlaced, func(ctx context.Context, event Event) {
		panic("boom")
	})
	bus.Subscribe(EventTypeGamblePlaced, func(ctx context.Context, event Event) {
		wg.Done()
	})

	bus.Emit(context.Background(), GamblePlacedEvent{UserID: 1, Amount: 10, Multiplier: 2})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "second handler was not called")
	}
}
