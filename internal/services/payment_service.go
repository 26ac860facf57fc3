package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
	"github.com/Morgpo/Grub-N-Go/internal/model"
)

// PaymentService runs the mock payment flow: validate the form, store a
// masked payment-method record, then try to advance the order status.
// Payment "succeeds" once the payment method exists; the status advance is
// best-effort.
type PaymentService struct {
	api PaymentAPI
}

func NewPaymentService(api PaymentAPI) *PaymentService {
	return &PaymentService{api: api}
}

// PaymentForm carries the mock card fields. The card number is used only to
// derive the last four digits and is never transmitted.
type PaymentForm struct {
	OrderID     int64
	CardNumber  string
	CardName    string
	ExpiryMonth string
	ExpiryYear  string
	CVC         string
}

type PaymentResult struct {
	OrderID         int64  `json:"order_id"`
	PaymentMethodID int64  `json:"payment_method_id"`
	CardLastFour    string `json:"card_last_four"`
	OrderConfirmed  bool   `json:"order_confirmed"`
}

func (s *PaymentService) Pay(ctx context.Context, form PaymentForm) (*PaymentResult, error) {
	if form.CardNumber == "" || form.CardName == "" || form.ExpiryMonth == "" ||
		form.ExpiryYear == "" || form.CVC == "" {
		return nil, validationErr("please fill in all payment fields")
	}
	month, err := strconv.Atoi(form.ExpiryMonth)
	if err != nil {
		return nil, validationErr("expiry month must be a number")
	}
	year, err := strconv.Atoi(form.ExpiryYear)
	if err != nil {
		return nil, validationErr("expiry year must be a number")
	}

	order, err := s.api.Order(ctx, form.OrderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}

	lastFour := maskLastFour(form.CardNumber)
	pmID, err := s.api.CreatePaymentMethod(ctx, order.CustomerID, grubngo.CreatePaymentMethodRequest{
		PaymentType:  model.PaymentTypeCard,
		PaymentToken: "mock-token-" + uuid.NewString(),
		CardLastFour: lastFour,
		CardBrand:    "VISA",
		ExpiryMonth:  month,
		ExpiryYear:   year,
		IsDefault:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment method: %w", err)
	}

	result := &PaymentResult{
		OrderID:         order.OrderID,
		PaymentMethodID: pmID,
		CardLastFour:    lastFour,
	}

	// soft dependency: a stuck status does not fail the payment
	if err := s.api.UpdateOrderStatus(ctx, order.OrderID, model.OrderStatusCompleted); err != nil {
		log.Printf("payment: could not advance order %d status: %v", order.OrderID, err)
	} else {
		result.OrderConfirmed = true
	}
	return result, nil
}

func (s *PaymentService) Methods(ctx context.Context, customerID int64) ([]model.PaymentMethod, error) {
	return s.api.PaymentMethods(ctx, customerID)
}

func maskLastFour(cardNumber string) string {
	digits := strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
