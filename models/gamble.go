package models

import "time"

// PendingGamble is an open bet awaiting settlement. A user has at most one.
type PendingGamble struct {
	DiscordID  int64     `db:"user_id"`
	Amount     int64     `db:"amount"`
	Multiplier int64     `db:"multiplier"`
	PredictWin bool      `db:"predict_win"`
	CreatedAt  time.Time `db:"created_at"`
}

// Stake returns the amount at risk, amount * multiplier
func (g *PendingGamble) Stake() int64 {
	return g.Amount * g.Multiplier
}

// Settlement represents the outcome of a settled gamble (returned to the user)
type Settlement struct {
	Won        bool
	PredictWin bool
	Stake      int64
	NewBalance int64
}

// Outcome is a single increment applied to a user's gamble stats.
// ItemSold outcomes only bump the items sold counter.
type Outcome struct {
	Won          bool
	PredictedWin bool
	AmountWon    int64
	AmountLost   int64
	ItemSold     bool
}

// SettlementOutcome builds the stats outcome for a settled gamble
func SettlementOutcome(won, predictedWin bool, stake int64) Outcome {
	outcome := Outcome{Won: won, PredictedWin: predictedWin}
	if won {
		outcome.AmountWon = stake
	} else {
		outcome.AmountLost = stake
	}
	return outcome
}

// SaleOutcome builds the stats outcome for a sold item
func SaleOutcome() Outcome {
	return Outcome{ItemSold: true}
}
