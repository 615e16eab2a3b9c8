package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of ledger events
type EventType string

const (
	EventTypeGamblePlaced   EventType = "gamble_placed"
	EventTypeGambleSettled  EventType = "gamble_settled"
	EventTypeGambleCanceled EventType = "gamble_canceled"
	EventTypeItemSold       EventType = "item_sold"
	EventTypeBalanceChange  EventType = "balance_change"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// GamblePlacedEvent is emitted when a pending gamble is stored
type GamblePlacedEvent struct {
	UserID     int64
	Amount     int64
	Multiplier int64
	PredictWin bool
}

func (e GamblePlacedEvent) Type() EventType {
	return EventTypeGamblePlaced
}

// GambleSettledEvent is emitted when a pending gamble is paid out
type GambleSettledEvent struct {
	UserID     int64
	Won        bool
	PredictWin bool
	Stake      int64
	NewBalance int64
}

func (e GambleSettledEvent) Type() EventType {
	return EventTypeGambleSettled
}

// GambleCanceledEvent is emitted when a pending gamble is discarded
type GambleCanceledEvent struct {
	UserID int64
	Amount int64
}

func (e GambleCanceledEvent) Type() EventType {
	return EventTypeGambleCanceled
}

// ItemSoldEvent is emitted when a user sells an item
type ItemSoldEvent struct {
	UserID int64
	Item   string
	Reward int64
}

func (e ItemSoldEvent) Type() EventType {
	return EventTypeItemSold
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	UserID       int64
	ChangeAmount int64
	NewBalance   int64
	Reason       string
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run
// asynchronously and a panicking handler does not affect the others.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus holds events raised inside a unit of work until the
// surrounding transaction commits.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush is called after a successful commit
func (b *TransactionalBus) Flush() {
	log.WithField("pendingEventCount", len(b.pending)).Debug("Flushing pending events")

	// Handlers outlive the command that raised the event.
	eventCtx := context.Background()
	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
}

// Discard is called after a rollback
func (b *TransactionalBus) Discard() {
	b.pending = nil
}

// Pending returns the number of events waiting for a commit
func (b *TransactionalBus) Pending() int {
	return len(b.pending)
}
