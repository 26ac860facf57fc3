package model

import "time"

// PaymentTypeCard is the only payment type the mock flow creates.
const PaymentTypeCard = "CARD"

// PaymentMethod as stored by the backend. Only the masked summary ever
// reaches this struct; the full card number is never transmitted.
type PaymentMethod struct {
	PaymentMethodID int64      `json:"payment_method_id"`
	CustomerID      int64      `json:"customer_id"`
	PaymentType     string     `json:"payment_type"`
	PaymentToken    string     `json:"payment_token"`
	CardLastFour    string     `json:"card_last_four,omitempty"`
	CardBrand       string     `json:"card_brand,omitempty"`
	ExpiryMonth     int        `json:"expiry_month,omitempty"`
	ExpiryYear      int        `json:"expiry_year,omitempty"`
	IsDefault       bool       `json:"is_default"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}
