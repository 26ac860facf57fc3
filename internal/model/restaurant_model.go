package model

import "github.com/shopspring/decimal"

// Restaurant as returned by GET /restaurants/open/
type Restaurant struct {
	RestaurantID   int64  `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	IsOpen         bool   `json:"is_open"`
	Email          string `json:"email,omitempty"`
}

// MenuItem as returned by GET /restaurants/{id}/menu-items/
// The backend serializes price as either a JSON number or a decimal string;
// decimal.Decimal accepts both.
type MenuItem struct {
	MenuItemID   int64           `json:"menu_item_id"`
	MenuID       int64           `json:"menu_id,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	IsAvailable  bool            `json:"is_available"`
	RestaurantID int64           `json:"restaurant_id"`
}
