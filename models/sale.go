package models

// SaleResult represents the outcome of selling an item (returned to the user)
type SaleResult struct {
	Item       string
	Reward     int64
	NewBalance int64
}
