package metrics

import (
	"context"

	"squidbot/events"

	log "github.com/sirupsen/logrus"
)

// EventMetricsCollector subscribes to ledger events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes the collector to every ledger event type
func (c *EventMetricsCollector) Register(bus *events.Bus) {
	for _, eventType := range []events.EventType{
		events.EventTypeGamblePlaced,
		events.EventTypeGambleSettled,
		events.EventTypeGambleCanceled,
		events.EventTypeItemSold,
		events.EventTypeBalanceChange,
	} {
		bus.Subscribe(eventType, c.HandleEvent)
	}
}

// HandleEvent updates metrics for a single event
func (c *EventMetricsCollector) HandleEvent(_ context.Context, event events.Event) {
	EventsPublished.WithLabelValues(string(event.Type())).Inc()

	switch e := event.(type) {
	case events.GamblePlacedEvent:
		GamblesPlaced.Inc()
	case events.GambleSettledEvent:
		result := ResultLoss
		if e.Won {
			result = ResultWin
		}
		GamblesSettled.WithLabelValues(result).Inc()
		GambleStake.Observe(float64(e.Stake))
	case events.GambleCanceledEvent:
		GamblesCanceled.Inc()
	case events.ItemSoldEvent:
		ItemsSold.Inc()
		SaleRewards.Add(float64(e.Reward))
	case events.BalanceChangeEvent:
		BalanceChanges.WithLabelValues(e.Reason).Inc()
	default:
		log.WithField("eventType", event.Type()).Warn("Unhandled event type in metrics collector")
	}
}
