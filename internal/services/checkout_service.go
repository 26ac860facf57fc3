package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
	"github.com/Morgpo/Grub-N-Go/internal/model"
)

// CheckoutService converts a non-empty cart into a persisted order plus one
// order item per line, then clears the cart. Steps run strictly one at a
// time: items reference the order id, so order creation must finish first.
type CheckoutService struct {
	api  OrderAPI
	cart *CartService
}

func NewCheckoutService(api OrderAPI, cart *CartService) *CheckoutService {
	return &CheckoutService{api: api, cart: cart}
}

type CheckoutStep struct {
	Name string
	Err  error
}

type CheckoutResult struct {
	OrderID      int64
	ItemsCreated int
	Steps        []CheckoutStep
}

// Checkout places the order for customerID. An empty cart returns
// ErrEmptyCart without any network call. On failure the remaining steps are
// skipped and the cart is left intact so the user can retry; anything
// already created server-side stays (the idempotency key lets the backend
// collapse duplicate retries).
func (s *CheckoutService) Checkout(ctx context.Context, customerID int64) (*CheckoutResult, error) {
	lines := s.cart.Lines()
	restaurantID, ok := s.cart.RestaurantID()
	if len(lines) == 0 || !ok {
		return nil, ErrEmptyCart
	}

	subtotal := subtotalOf(lines)
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax)
	attempt := uuid.NewString()

	result := &CheckoutResult{}
	step := func(name string, err error) {
		result.Steps = append(result.Steps, CheckoutStep{Name: name, Err: err})
	}

	orderID, err := s.api.CreateOrder(ctx, grubngo.CreateOrderRequest{
		CustomerID:     customerID,
		RestaurantID:   restaurantID,
		Status:         model.OrderStatusPending,
		Subtotal:       subtotal.StringFixed(2),
		Tax:            tax.StringFixed(2),
		Total:          total.StringFixed(2),
		IdempotencyKey: attempt,
	})
	step("create_order", err)
	if err != nil {
		return result, fmt.Errorf("create order: %w", err)
	}
	result.OrderID = orderID

	for _, line := range lines {
		err := s.api.CreateOrderItem(ctx, grubngo.CreateOrderItemRequest{
			OrderID:         orderID,
			MenuItemID:      line.Item.MenuItemID,
			ItemName:        line.Item.Name,
			ItemDescription: line.Item.Description,
			Quantity:        line.Quantity,
			UnitPrice:       line.Item.Price.StringFixed(2),
		})
		step("create_order_item", err)
		if err != nil {
			return result, fmt.Errorf("create order item %q: %w", line.Item.Name, err)
		}
		result.ItemsCreated++
	}

	s.cart.Clear()
	log.Printf("checkout: order %d placed (%d items, attempt %s)", orderID, result.ItemsCreated, attempt)
	return result, nil
}
