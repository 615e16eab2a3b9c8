package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatName(t *testing.T) {
	for _, name := range AllStatNames {
		parsed, err := ParseStatName(string(name))
		require.NoError(t, err)
		assert.Equal(t, name, parsed)
	}

	for _, bad := range []string{"", "Wins", "balance", "wins; DROP TABLE gamble_stats", " wins"} {
		_, err := ParseStatName(bad)
		assert.Error(t, err, bad)
	}
}

func TestGambleStats_Value(t *testing.T) {
	stats := &GambleStats{Wins: 1, Losses: 2, BetsWon: 3, AmountWon: 4, AmountLost: 5, ItemsSold: 6}

	assert.Equal(t, int64(1), stats.Value(StatWins))
	assert.Equal(t, int64(2), stats.Value(StatLosses))
	assert.Equal(t, int64(3), stats.Value(StatBetsWon))
	assert.Equal(t, int64(4), stats.Value(StatAmountWon))
	assert.Equal(t, int64(5), stats.Value(StatAmountLost))
	assert.Equal(t, int64(6), stats.Value(StatItemsSold))
}

func TestSettlementOutcome(t *testing.T) {
	win := SettlementOutcome(true, true, 200)
	assert.Equal(t, Outcome{Won: true, PredictedWin: true, AmountWon: 200}, win)

	loss := SettlementOutcome(false, true, 200)
	assert.Equal(t, Outcome{Won: false, PredictedWin: true, AmountLost: 200}, loss)

	assert.Equal(t, Outcome{ItemSold: true}, SaleOutcome())
}
