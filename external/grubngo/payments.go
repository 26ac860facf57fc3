package grubngo

import (
	"context"
	"fmt"

	"github.com/Morgpo/Grub-N-Go/internal/model"
)

// CreatePaymentMethodRequest stores a masked card summary. The token is a
// client-generated mock; real card data never leaves the process.
type CreatePaymentMethodRequest struct {
	PaymentType  string `json:"payment_type"`
	PaymentToken string `json:"payment_token"`
	CardLastFour string `json:"card_last_four,omitempty"`
	CardBrand    string `json:"card_brand,omitempty"`
	ExpiryMonth  int    `json:"expiry_month,omitempty"`
	ExpiryYear   int    `json:"expiry_year,omitempty"`
	IsDefault    bool   `json:"is_default"`
}

type createPaymentMethodResponse struct {
	PaymentMethodID int64  `json:"payment_method_id"`
	Message         string `json:"message"`
}

func (c *Client) CreatePaymentMethod(ctx context.Context, customerID int64, req CreatePaymentMethodRequest) (int64, error) {
	var out createPaymentMethodResponse
	path := fmt.Sprintf("/customers/%d/payment-methods", customerID)
	if err := c.post(ctx, path, req, &out); err != nil {
		return 0, err
	}
	return out.PaymentMethodID, nil
}

func (c *Client) PaymentMethods(ctx context.Context, customerID int64) ([]model.PaymentMethod, error) {
	var out []model.PaymentMethod
	path := fmt.Sprintf("/customers/%d/payment-methods", customerID)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
