package events

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// RegisterAuditLog writes one structured log line per committed ledger event
func RegisterAuditLog(bus *Bus) {
	for _, eventType := range []EventType{
		EventTypeGamblePlaced,
		EventTypeGambleSettled,
		EventTypeGambleCanceled,
		EventTypeItemSold,
		EventTypeBalanceChange,
	} {
		bus.Subscribe(eventType, auditHandler)
	}
}

func auditHandler(_ context.Context, event Event) {
	log.WithFields(auditFields(event)).Info("Ledger event")
}

func auditFields(event Event) log.Fields {
	fields := log.Fields{"eventType": event.Type()}

	switch e := event.(type) {
	case GamblePlacedEvent:
		fields["user_id"] = e.UserID
		fields["amount"] = e.Amount
		fields["multiplier"] = e.Multiplier
		fields["predict_win"] = e.PredictWin
	case GambleSettledEvent:
		fields["user_id"] = e.UserID
		fields["won"] = e.Won
		fields["stake"] = e.Stake
		fields["new_balance"] = e.NewBalance
	case GambleCanceledEvent:
		fields["user_id"] = e.UserID
		fields["amount"] = e.Amount
	case ItemSoldEvent:
		fields["user_id"] = e.UserID
		fields["item"] = e.Item
		fields["reward"] = e.Reward
	case BalanceChangeEvent:
		fields["user_id"] = e.UserID
		fields["change_amount"] = e.ChangeAmount
		fields["new_balance"] = e.NewBalance
		fields["reason"] = e.Reason
	}

	return fields
}
