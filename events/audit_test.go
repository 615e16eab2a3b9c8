package events

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestAuditFields(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected log.Fields
	}{
		{
			name:  "settled gamble",
			event: GambleSettledEvent{UserID: 7, Won: true, PredictWin: true, Stake: 30, NewBalance: 80},
			expected: log.Fields{
				"eventType":   EventTypeGambleSettled,
				"user_id":     int64(7),
				"won":         true,
				"stake":       int64(30),
				"new_balance": int64(80),
			},
		},
		{
			name:  "sold item",
			event: ItemSoldEvent{UserID: 7, Item: "hat", Reward: 12},
			expected: log.Fields{
				"eventType": EventTypeItemSold,
				"user_id":   int64(7),
				"item":      "hat",
				"reward":    int64(12),
			},
		},
		{
			name:  "admin adjustment",
			event: BalanceChangeEvent{UserID: 7, ChangeAmount: -5, NewBalance: 45, Reason: "admin"},
			expected: log.Fields{
				"eventType":     EventTypeBalanceChange,
				"user_id":       int64(7),
				"change_amount": int64(-5),
				"new_balance":   int64(45),
				"reason":        "admin",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, auditFields(tt.event))
		})
	}
}
