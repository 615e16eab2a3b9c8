package testutil

import (
	"squidbot/models"
)

// CreateTestPendingGamble creates a pending gamble with default values
func CreateTestPendingGamble(discordID int64) *models.PendingGamble {
	return &models.PendingGamble{
		DiscordID:  discordID,
		Amount:     10,
		Multiplier: 2,
		PredictWin: true,
	}
}

// CreateTestPendingGambleWithStake creates a pending gamble with a specific stake
func CreateTestPendingGambleWithStake(discordID, amount, multiplier int64, predictWin bool) *models.PendingGamble {
	gamble := CreateTestPendingGamble(discordID)
	gamble.Amount = amount
	gamble.Multiplier = multiplier
	gamble.PredictWin = predictWin
	return gamble
}
