package domain

import "time"

// Payment is the append-only record of a settled checkout. Once inserted it is
// never mutated; order history and all revenue statistics derive from it.
type Payment struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transaction_id,omitempty"`
	CartItemIDs   []string  `json:"cart_items"`
	MenuItemIDs   []string  `json:"menu_items"`
	CreatedAt     time.Time `json:"created_at"`
}
