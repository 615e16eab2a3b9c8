package stats

import (
	"context"
	"errors"

	"squidbot/bot/common"
	"squidbot/models"
	"squidbot/service"

	log "github.com/sirupsen/logrus"
)

// HandleStats reports the caller's stats: $stats
func (f *Feature) HandleStats(ctx context.Context, req *common.Request) (string, error) {
	stats, err := f.statsService.GetStats(ctx, req.UserID)
	if err != nil {
		return "", common.NewSystemError(err, "failed to get stats")
	}

	return common.FormatStats(req.DisplayName, stats), nil
}

// HandleLeaderboard lists the top users for a stat: $leaderboard [stat]
func (f *Feature) HandleLeaderboard(ctx context.Context, req *common.Request) (string, error) {
	stat := models.DefaultLeaderboardStat
	if len(req.Args) > 0 {
		parsed, err := models.ParseStatName(req.Args[0])
		if err != nil {
			return "", common.NewUserError("Invalid stat. Choose from: "+common.StatNameList(), err.Error())
		}
		stat = parsed
	}

	entries, err := f.statsService.GetLeaderboard(ctx, stat, f.leaderboardSize)
	switch {
	case errors.Is(err, service.ErrInvalidStat):
		return "", common.NewUserError("Invalid stat. Choose from: "+common.StatNameList(), err.Error())
	case err != nil:
		return "", common.NewSystemError(err, "failed to get leaderboard")
	}

	if len(entries) == 0 {
		return "No data available for the leaderboard.", nil
	}

	// Names are looked up one at a time so a single failure only affects its own row
	lines := make([]common.LeaderboardLine, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, common.LeaderboardLine{
			Rank:  entry.Rank,
			Name:  f.resolver.ResolveName(ctx, entry.DiscordID),
			Value: entry.Value,
		})
	}

	log.WithFields(log.Fields{
		"request_id": req.ID,
		"stat":       stat,
		"entries":    len(lines),
	}).Debug("Rendered leaderboard")

	return common.FormatLeaderboard(stat, lines), nil
}
