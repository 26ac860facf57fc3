package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses mirror the backend enum.
const (
	OrderStatusDraft     = "DRAFT"
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusArchived  = "ARCHIVED"
)

// Order is server-owned; the client only creates it and reads it back.
type Order struct {
	OrderID        int64           `json:"order_id"`
	CustomerID     int64           `json:"customer_id"`
	RestaurantID   int64           `json:"restaurant_id"`
	Status         string          `json:"status"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	SubmittedAt    *time.Time      `json:"submitted_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	CreatedAt      *time.Time      `json:"created_at,omitempty"`
	RestaurantName string          `json:"restaurant_name,omitempty"`
}

// OrderItem carries the order-time snapshot of a menu item.
type OrderItem struct {
	OrderItemID int64           `json:"order_item_id"`
	OrderID     int64           `json:"order_id"`
	MenuItemID  int64           `json:"menu_item_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Notes       string          `json:"notes,omitempty"`
	ItemName    string          `json:"item_name,omitempty"`
	Description string          `json:"description,omitempty"`
}
