package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
)

type fakeOrderAPI struct {
	orders    []grubngo.CreateOrderRequest
	items     []grubngo.CreateOrderItemRequest
	orderErr  error
	itemErrAt int // fail the nth item call (1-based); 0 means never
	nextOrder int64
}

func (f *fakeOrderAPI) CreateOrder(_ context.Context, req grubngo.CreateOrderRequest) (int64, error) {
	f.orders = append(f.orders, req)
	if f.orderErr != nil {
		return 0, f.orderErr
	}
	return f.nextOrder, nil
}

func (f *fakeOrderAPI) CreateOrderItem(_ context.Context, req grubngo.CreateOrderItemRequest) error {
	f.items = append(f.items, req)
	if f.itemErrAt != 0 && len(f.items) == f.itemErrAt {
		return errors.New("boom")
	}
	return nil
}

func TestCheckout_EmptyCartMakesNoCalls(t *testing.T) {
	api := &fakeOrderAPI{nextOrder: 1}
	cart := NewCartService()
	svc := NewCheckoutService(api, cart)

	_, err := svc.Checkout(context.Background(), 2)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, api.orders)
	assert.Empty(t, api.items)
}

func TestCheckout_PlacesOrderThenItemsThenClears(t *testing.T) {
	api := &fakeOrderAPI{nextOrder: 41}
	cart := NewCartService()
	require.NoError(t, cart.Add(menuItem(1, "Burger", "10.00", 7)))
	require.NoError(t, cart.Add(menuItem(1, "Burger", "10.00", 7)))
	require.NoError(t, cart.Add(menuItem(2, "Fries", "5.00", 7)))
	svc := NewCheckoutService(api, cart)

	result, err := svc.Checkout(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(41), result.OrderID)
	assert.Equal(t, 2, result.ItemsCreated)

	require.Len(t, api.orders, 1)
	order := api.orders[0]
	assert.Equal(t, int64(2), order.CustomerID)
	assert.Equal(t, int64(7), order.RestaurantID)
	assert.Equal(t, "PENDING", order.Status)
	assert.Equal(t, "25.00", order.Subtotal)
	assert.Equal(t, "2.06", order.Tax)
	assert.Equal(t, "27.06", order.Total)
	assert.NotEmpty(t, order.IdempotencyKey)

	// items follow the order, in insertion order, with price snapshots
	require.Len(t, api.items, 2)
	assert.Equal(t, int64(41), api.items[0].OrderID)
	assert.Equal(t, int64(1), api.items[0].MenuItemID)
	assert.Equal(t, "Burger", api.items[0].ItemName)
	assert.Equal(t, 2, api.items[0].Quantity)
	assert.Equal(t, "10.00", api.items[0].UnitPrice)
	assert.Equal(t, int64(2), api.items[1].MenuItemID)
	assert.Equal(t, 1, api.items[1].Quantity)
	assert.Equal(t, "5.00", api.items[1].UnitPrice)

	assert.Empty(t, cart.Lines(), "cart cleared after successful checkout")
}

func TestCheckout_OrderFailureIssuesNoItemCalls(t *testing.T) {
	api := &fakeOrderAPI{orderErr: errors.New("backend down")}
	cart := NewCartService()
	require.NoError(t, cart.Add(menuItem(1, "Burger", "10.00", 7)))
	svc := NewCheckoutService(api, cart)

	_, err := svc.Checkout(context.Background(), 2)
	require.Error(t, err)
	assert.Empty(t, api.items)
	assert.Len(t, cart.Lines(), 1, "cart kept for retry")
}

func TestCheckout_ItemFailureAbortsAndKeepsCart(t *testing.T) {
	api := &fakeOrderAPI{nextOrder: 41, itemErrAt: 1}
	cart := NewCartService()
	require.NoError(t, cart.Add(menuItem(1, "Burger", "10.00", 7)))
	require.NoError(t, cart.Add(menuItem(2, "Fries", "5.00", 7)))
	svc := NewCheckoutService(api, cart)

	result, err := svc.Checkout(context.Background(), 2)
	require.Error(t, err)
	assert.Len(t, api.items, 1, "no call after the failing one")
	assert.Equal(t, 0, result.ItemsCreated)
	assert.Len(t, cart.Lines(), 2)
	// no rollback: the created order is left as-is server-side
	assert.Len(t, api.orders, 1)
}

func TestCheckout_FreshIdempotencyKeyPerAttempt(t *testing.T) {
	api := &fakeOrderAPI{orderErr: errors.New("backend down")}
	cart := NewCartService()
	require.NoError(t, cart.Add(menuItem(1, "Burger", "10.00", 7)))
	svc := NewCheckoutService(api, cart)

	_, _ = svc.Checkout(context.Background(), 2)
	_, _ = svc.Checkout(context.Background(), 2)

	require.Len(t, api.orders, 2)
	assert.NotEqual(t, api.orders[0].IdempotencyKey, api.orders[1].IdempotencyKey)
}
