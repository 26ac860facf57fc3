package model

// RoleCustomer is the only role the client surface supports.
const RoleCustomer = "CUSTOMER"

// Session is the authenticated identity cached for the current run.
type Session struct {
	AccountID int64  `json:"account_id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
}
