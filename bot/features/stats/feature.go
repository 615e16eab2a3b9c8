package stats

import (
	"squidbot/bot/common"
	"squidbot/service"
)

// Feature handles the stats and leaderboard commands
type Feature struct {
	statsService    service.StatsService
	resolver        common.NameResolver
	leaderboardSize int
}

// New creates a new stats feature
func New(statsService service.StatsService, resolver common.NameResolver, leaderboardSize int) *Feature {
	return &Feature{
		statsService:    statsService,
		resolver:        resolver,
		leaderboardSize: leaderboardSize,
	}
}
