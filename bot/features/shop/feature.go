package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"squidbot/bot/common"
	"squidbot/service"
)

// Feature handles the sell command
type Feature struct {
	shopService service.ShopService
	prefix      string
}

// New creates a new shop feature
func New(shopService service.ShopService, prefix string) *Feature {
	return &Feature{
		shopService: shopService,
		prefix:      prefix,
	}
}

// HandleSell sells an item once for a random reward: $sell <item>
func (f *Feature) HandleSell(ctx context.Context, req *common.Request) (string, error) {
	item := strings.Join(req.Args, " ")

	result, err := f.shopService.SellItem(ctx, req.UserID, item)
	switch {
	case errors.Is(err, service.ErrItemRequired):
		return "", common.NewUserError("You need to specify the item you want to sell. Usage: "+f.prefix+"sell <item>", err.Error())
	case errors.Is(err, service.ErrItemNameTooLong):
		return "", common.NewUserError(
			fmt.Sprintf("Item names can be at most %d characters.", service.MaxItemNameLength),
			err.Error(),
		)
	case errors.Is(err, service.ErrItemAlreadySold):
		return "", common.NewUserError(
			fmt.Sprintf("You have already sold the %s. You cannot sell it again.", strings.TrimSpace(item)),
			err.Error(),
		)
	case err != nil:
		return "", common.NewSystemError(err, "failed to sell item")
	}

	return fmt.Sprintf("You sold your %s for %d %s. Your new balance is %d %s.",
		result.Item, result.Reward, common.Currency, result.NewBalance, common.Currency), nil
}
