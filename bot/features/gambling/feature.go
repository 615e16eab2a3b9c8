package gambling

import "squidbot/service"

// Feature handles the gamble, payout and cancel commands
type Feature struct {
	gamblingService service.GamblingService
	prefix          string
}

// New creates a new gambling feature
func New(gamblingService service.GamblingService, prefix string) *Feature {
	return &Feature{
		gamblingService: gamblingService,
		prefix:          prefix,
	}
}

func (f *Feature) gambleUsage() string {
	return "Usage: " + f.prefix + "gamble <amount> <multiplier> <win|lose>"
}

func (f *Feature) payoutUsage() string {
	return "Usage: " + f.prefix + "payout <win|lose>"
}

// parseOutcome accepts the literal outcomes "win" and "lose"
func parseOutcome(s string) (win bool, ok bool) {
	switch s {
	case "win":
		return true, true
	case "lose":
		return false, true
	default:
		return false, false
	}
}
