package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"squidbot/models"
)

// MaxItemNameLength bounds the item names users can sell
const MaxItemNameLength = 100

var validate = validator.New(validator.WithRequiredStructEnabled())

type placeGambleRequest struct {
	Amount     int64 `validate:"gt=0"`
	Multiplier int64 `validate:"gt=0"`
}

type sellItemRequest struct {
	Item string `validate:"required,max=100"`
}

// validateStake checks the bet arguments and that amount*multiplier fits in an int64
func validateStake(amount, multiplier int64) error {
	if err := validate.Struct(placeGambleRequest{Amount: amount, Multiplier: multiplier}); err != nil {
		return ErrInvalidAmount
	}
	if amount > math.MaxInt64/multiplier {
		return ErrStakeTooLarge
	}
	return nil
}

// normalizeItemName trims the item name and validates it
func normalizeItemName(item string) (string, error) {
	item = strings.TrimSpace(item)

	err := validate.Struct(sellItemRequest{Item: item})
	if err == nil {
		return item, nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		switch validationErrs[0].Tag() {
		case "required":
			return "", ErrItemRequired
		case "max":
			return "", ErrItemNameTooLong
		}
	}
	return "", fmt.Errorf("invalid item name: %w", err)
}

// validateStat rejects stat names outside the allow-list, including values
// built by casting arbitrary strings to models.StatName.
func validateStat(stat models.StatName) error {
	if _, err := models.ParseStatName(string(stat)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStat, stat)
	}
	return nil
}
