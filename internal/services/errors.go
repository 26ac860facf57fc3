package services

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrRestaurantMismatch = errors.New("cart holds items from another restaurant")
)

// ValidationError is a client-side form failure: the request never reached
// the backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
