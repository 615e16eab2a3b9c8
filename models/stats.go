package models

import "fmt"

// GambleStats holds a user's cumulative counters. Counters only ever increase.
type GambleStats struct {
	DiscordID  int64 `db:"user_id"`
	Wins       int64 `db:"wins"`
	Losses     int64 `db:"losses"`
	BetsWon    int64 `db:"bets_won"` // Bets where the user predicted a win
	AmountWon  int64 `db:"amount_won"`
	AmountLost int64 `db:"amount_lost"`
	ItemsSold  int64 `db:"items_sold"`
}

// StatName identifies a leaderboard-able stat
type StatName string

const (
	StatWins       StatName = "wins"
	StatLosses     StatName = "losses"
	StatBetsWon    StatName = "bets_won"
	StatAmountWon  StatName = "amount_won"
	StatAmountLost StatName = "amount_lost"
	StatItemsSold  StatName = "items_sold"
)

// DefaultLeaderboardStat is used when no stat is given
const DefaultLeaderboardStat = StatBetsWon

// AllStatNames lists every valid stat in display order
var AllStatNames = []StatName{
	StatWins,
	StatLosses,
	StatBetsWon,
	StatAmountWon,
	StatAmountLost,
	StatItemsSold,
}

// ParseStatName converts user input into a StatName
func ParseStatName(s string) (StatName, error) {
	for _, name := range AllStatNames {
		if string(name) == s {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown stat %q", s)
}

// Value returns the counter for the given stat
func (s *GambleStats) Value(name StatName) int64 {
	switch name {
	case StatWins:
		return s.Wins
	case StatLosses:
		return s.Losses
	case StatBetsWon:
		return s.BetsWon
	case StatAmountWon:
		return s.AmountWon
	case StatAmountLost:
		return s.AmountLost
	case StatItemsSold:
		return s.ItemsSold
	default:
		return 0
	}
}

// LeaderboardEntry represents a user's position on a stat leaderboard
type LeaderboardEntry struct {
	Rank      int
	DiscordID int64
	Value     int64
}
