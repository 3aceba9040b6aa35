package domain

// CartItem is a pending purchase line owned by the customer identified by Email.
// Every operation on a cart item must be performed by its owner.
type CartItem struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image,omitempty"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}
