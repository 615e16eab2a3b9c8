package service

import "errors"

// Precondition and validation failures. Callers match these with errors.Is
// and turn them into user-facing replies; any other error is a store failure.
var (
	ErrInvalidAmount       = errors.New("amount and multiplier must be positive")
	ErrStakeTooLarge       = errors.New("amount times multiplier is too large")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrPendingGambleExists = errors.New("pending gamble already exists")
	ErrNoPendingGamble     = errors.New("no pending gamble")
	ErrItemRequired        = errors.New("item name is required")
	ErrItemNameTooLong     = errors.New("item name is too long")
	ErrItemAlreadySold     = errors.New("item already sold")
	ErrInvalidStat         = errors.New("invalid stat")
	ErrInvalidLimit        = errors.New("limit must be positive")
)
