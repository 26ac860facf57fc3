package model

import "time"

// Account is the login record behind a session.
type Account struct {
	AccountID int64      `json:"account_id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Customer is the profile record for a customer account.
type Customer struct {
	CustomerID   int64      `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Profile bundles the two records the account page edits.
type Profile struct {
	Account  Account  `json:"account"`
	Customer Customer `json:"customer"`
}
