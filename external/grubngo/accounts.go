package grubngo

import (
	"context"
	"fmt"

	"github.com/Morgpo/Grub-N-Go/internal/model"
)

type AccountUpdate struct {
	Email string `json:"email,omitempty"`
}

type CustomerUpdate struct {
	CustomerName string `json:"customer_name,omitempty"`
}

func (c *Client) Account(ctx context.Context, accountID int64) (model.Account, error) {
	var out model.Account
	err := c.get(ctx, fmt.Sprintf("/accounts/%d", accountID), &out)
	return out, err
}

func (c *Client) UpdateAccount(ctx context.Context, accountID int64, upd AccountUpdate) error {
	return c.put(ctx, fmt.Sprintf("/accounts/%d", accountID), upd, nil)
}

func (c *Client) Customer(ctx context.Context, customerID int64) (model.Customer, error) {
	var out model.Customer
	err := c.get(ctx, fmt.Sprintf("/customers/%d", customerID), &out)
	return out, err
}

func (c *Client) UpdateCustomer(ctx context.Context, customerID int64, upd CustomerUpdate) error {
	return c.put(ctx, fmt.Sprintf("/customers/%d", customerID), upd, nil)
}
