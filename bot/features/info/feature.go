package info

import (
	"context"
	"fmt"
	"strings"

	"squidbot/bot/common"
)

// Feature handles the info command
type Feature struct {
	helpText string
}

// New creates the info feature; the help text uses the configured prefix
func New(prefix string) *Feature {
	return &Feature{
		helpText: buildHelpText(prefix),
	}
}

// HandleInfo replies with the static help text: $info
func (f *Feature) HandleInfo(_ context.Context, _ *common.Request) (string, error) {
	return f.helpText, nil
}

func buildHelpText(p string) string {
	var b strings.Builder
	b.WriteString("```")
	b.WriteString("**Available Commands:**\n\n")
	fmt.Fprintf(&b, "%sgamble <amount> <multiplier> <win|lose> - Gamble an amount with a multiplier. Specify if you will win or lose.\n", p)
	fmt.Fprintf(&b, "  Example: %sgamble 10 2 win\n\n", p)
	fmt.Fprintf(&b, "%spayout <win|lose> - Payout the result of your pending gamble.\n", p)
	fmt.Fprintf(&b, "  Example: %spayout win\n\n", p)
	fmt.Fprintf(&b, "%scancel - Cancel your pending gamble.\n", p)
	fmt.Fprintf(&b, "  Example: %scancel\n\n", p)
	fmt.Fprintf(&b, "%ssell <item> - Sell an item for random amount of %s.\n", p, common.Currency)
	fmt.Fprintf(&b, "  Example: %ssell fish\n\n", p)
	fmt.Fprintf(&b, "%sstats - Display your gambling statistics.\n\n", p)
	fmt.Fprintf(&b, "%sleaderboard <stat> - Display the leaderboard for a specific stat (%s (default = bets_won)).\n\n", p, common.StatNameList())
	fmt.Fprintf(&b, "%sbalance - Display your current balance.\n\n", p)
	fmt.Fprintf(&b, "%sinfo - Display this help message.\n", p)
	b.WriteString("```")
	return b.String()
}
