package model

// CartLine binds one menu item to a quantity. Lines are keyed by
// Item.MenuItemID and keep their insertion order for display.
type CartLine struct {
	Item     MenuItem `json:"menu_item"`
	Quantity int      `json:"quantity"`
}

// CartView is returned when the UI asks for the cart: the lines plus the
// derived totals, money rendered as fixed two-decimal strings.
type CartView struct {
	Lines    []CartLine `json:"lines"`
	Subtotal string     `json:"subtotal"`
	Tax      string     `json:"tax"`
	Total    string     `json:"total"`
}
