package grubngo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Morgpo/Grub-N-Go/internal/model"
)

// CreateOrderRequest carries the checkout totals. Money fields are canonical
// two-decimal strings so floating-point artifacts never reach the wire.
type CreateOrderRequest struct {
	CustomerID   int64  `json:"customer_id"`
	RestaurantID int64  `json:"restaurant_id"`
	Status       string `json:"status"`
	Subtotal     string `json:"subtotal"`
	Tax          string `json:"tax"`
	Total        string `json:"total"`

	// IdempotencyKey is client-generated per checkout attempt and sent as a
	// header, not a body field.
	IdempotencyKey string `json:"-"`
}

type CreateOrderItemRequest struct {
	OrderID         int64  `json:"order_id"`
	MenuItemID      int64  `json:"menu_item_id"`
	ItemName        string `json:"item_name"`
	ItemDescription string `json:"item_description,omitempty"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	Notes           string `json:"notes,omitempty"`
}

type createOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

// CreateOrder submits a new order and returns the backend-assigned id.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (int64, error) {
	var headers map[string]string
	if req.IdempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": req.IdempotencyKey}
	}
	var out createOrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders/", headers, req, &out); err != nil {
		return 0, err
	}
	return out.OrderID, nil
}

func (c *Client) CreateOrderItem(ctx context.Context, req CreateOrderItemRequest) error {
	return c.post(ctx, "/order-items/", req, nil)
}

func (c *Client) Order(ctx context.Context, orderID int64) (model.Order, error) {
	var out model.Order
	err := c.get(ctx, fmt.Sprintf("/orders/%d", orderID), &out)
	return out, err
}

func (c *Client) CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	var out []model.Order
	path := fmt.Sprintf("/customers/%d/orders/", customerID)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	path := fmt.Sprintf("/orders/%d/status?status=%s", orderID, url.QueryEscape(status))
	return c.put(ctx, path, nil, nil)
}
