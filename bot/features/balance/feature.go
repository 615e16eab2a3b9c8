package balance

import (
	"context"
	"fmt"

	"squidbot/bot/common"
	"squidbot/service"
)

// Feature handles the balance command
type Feature struct {
	balanceService service.BalanceService
}

// New creates a new balance feature
func New(balanceService service.BalanceService) *Feature {
	return &Feature{
		balanceService: balanceService,
	}
}

// HandleBalance reports the caller's balance: $balance
func (f *Feature) HandleBalance(ctx context.Context, req *common.Request) (string, error) {
	balance, err := f.balanceService.GetBalance(ctx, req.UserID)
	if err != nil {
		return "", common.NewSystemError(err, "failed to get balance")
	}

	return fmt.Sprintf("%s, your current balance is %d %s.", req.DisplayName, balance, common.Currency), nil
}
