package gambling

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"squidbot/bot/common"
	"squidbot/service"
)

// HandleGamble places a pending gamble: $gamble <amount> <multiplier> <win|lose>
func (f *Feature) HandleGamble(ctx context.Context, req *common.Request) (string, error) {
	var outcome string
	if len(req.Args) >= 3 {
		outcome = req.Args[2]
	}
	predictWin, ok := parseOutcome(outcome)
	if !ok {
		return "", common.NewUserError(
			"You must specify if you will win or lose. "+f.gambleUsage(),
			fmt.Sprintf("invalid gamble outcome %q", outcome),
		)
	}

	amount, amountErr := strconv.ParseInt(req.Args[0], 10, 64)
	multiplier, multiplierErr := strconv.ParseInt(req.Args[1], 10, 64)
	if amountErr != nil || multiplierErr != nil {
		return "", common.NewUserError(
			"Amount and multiplier must be whole numbers. "+f.gambleUsage(),
			fmt.Sprintf("unparseable gamble arguments %q", req.Args[:2]),
		)
	}

	gamble, err := f.gamblingService.PlaceGamble(ctx, req.UserID, amount, multiplier, predictWin)
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		return "", common.NewUserError("Amount and multiplier must be positive integers. "+f.gambleUsage(), err.Error())
	case errors.Is(err, service.ErrStakeTooLarge):
		return "", common.NewUserError("That accumulator is too large. Try a smaller amount or multiplier.", err.Error())
	case errors.Is(err, service.ErrInsufficientBalance):
		return "", common.NewUserError("You do not have enough balance to gamble this amount.", err.Error())
	case errors.Is(err, service.ErrPendingGambleExists):
		return "", common.NewUserError("You already have a pending gamble. Please resolve it before starting a new one.", err.Error())
	case err != nil:
		return "", common.NewSystemError(err, "failed to place gamble")
	}

	return fmt.Sprintf("Accumulator is on for %d %s! Run %spayout if it was a win or loss.", gamble.Stake(), common.Currency, f.prefix), nil
}

// HandlePayout settles the pending gamble: $payout <win|lose>
func (f *Feature) HandlePayout(ctx context.Context, req *common.Request) (string, error) {
	var outcome string
	if len(req.Args) >= 1 {
		outcome = req.Args[0]
	}
	won, ok := parseOutcome(outcome)
	if !ok {
		return "", common.NewUserError(
			"You must specify if the result was win or lose. "+f.payoutUsage(),
			fmt.Sprintf("invalid payout outcome %q", outcome),
		)
	}

	settlement, err := f.gamblingService.SettleGamble(ctx, req.UserID, won)
	switch {
	case errors.Is(err, service.ErrNoPendingGamble):
		return "", common.NewUserError("You have no pending gambles.", err.Error())
	case err != nil:
		return "", common.NewSystemError(err, "failed to settle gamble")
	}

	if settlement.Won {
		return fmt.Sprintf("Congratulations! You won %d %s!", settlement.Stake, common.Currency), nil
	}
	return fmt.Sprintf("Sorry, you lost %d %s.", settlement.Stake, common.Currency), nil
}

// HandleCancel discards the pending gamble: $cancel
func (f *Feature) HandleCancel(ctx context.Context, req *common.Request) (string, error) {
	_, err := f.gamblingService.CancelGamble(ctx, req.UserID)
	switch {
	case errors.Is(err, service.ErrNoPendingGamble):
		return "", common.NewUserError("You have no pending gambles to cancel.", err.Error())
	case err != nil:
		return "", common.NewSystemError(err, "failed to cancel gamble")
	}

	return "Your pending gamble has been canceled.", nil
}
