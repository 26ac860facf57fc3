package services

import (
	"context"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
	"github.com/Morgpo/Grub-N-Go/internal/model"
)

// Consumer-side views of the backend client, so each service can be
// constructed against a fake in tests. *grubngo.Client satisfies all of them.

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (grubngo.LoginResult, error)
	Register(ctx context.Context, req grubngo.RegisterRequest) (grubngo.LoginResult, error)
}

type OrderAPI interface {
	CreateOrder(ctx context.Context, req grubngo.CreateOrderRequest) (int64, error)
	CreateOrderItem(ctx context.Context, req grubngo.CreateOrderItemRequest) error
}

type PaymentAPI interface {
	Order(ctx context.Context, orderID int64) (model.Order, error)
	CreatePaymentMethod(ctx context.Context, customerID int64, req grubngo.CreatePaymentMethodRequest) (int64, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
	PaymentMethods(ctx context.Context, customerID int64) ([]model.PaymentMethod, error)
}

type AccountAPI interface {
	Account(ctx context.Context, accountID int64) (model.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, upd grubngo.AccountUpdate) error
	Customer(ctx context.Context, customerID int64) (model.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, upd grubngo.CustomerUpdate) error
}
