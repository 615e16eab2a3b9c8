package common

import (
	"fmt"
	"strings"

	"squidbot/models"
)

// Currency is the name of the bot's currency in replies
const Currency = "squids"

// FormatStats renders a user's stats as a code block
func FormatStats(name string, stats *models.GambleStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```Stats for %s:\n", name)
	fmt.Fprintf(&b, "Wins: %d\n", stats.Wins)
	fmt.Fprintf(&b, "Losses: %d\n", stats.Losses)
	fmt.Fprintf(&b, "Bets on Win: %d\n", stats.BetsWon)
	fmt.Fprintf(&b, "Amount Won: %d %s\n", stats.AmountWon, Currency)
	fmt.Fprintf(&b, "Amount Lost: %d %s\n", stats.AmountLost, Currency)
	fmt.Fprintf(&b, "Items Sold: %d```", stats.ItemsSold)
	return b.String()
}

// LeaderboardLine is one rendered leaderboard row
type LeaderboardLine struct {
	Rank  int
	Name  string
	Value int64
}

// FormatLeaderboard renders a leaderboard for a stat
func FormatLeaderboard(stat models.StatName, lines []LeaderboardLine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Leaderboard for %s:\n", stat)
	for _, line := range lines {
		fmt.Fprintf(&b, "%d. %s - %d\n", line.Rank, line.Name, line.Value)
	}
	return b.String()
}

// StatNameList joins the valid stat names for usage text
func StatNameList() string {
	names := make([]string, len(models.AllStatNames))
	for i, name := range models.AllStatNames {
		names[i] = string(name)
	}
	return strings.Join(names, ", ")
}
