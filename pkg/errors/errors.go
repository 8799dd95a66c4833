package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownDiscount = errors.New("unknown discount code")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInternal        = errors.New("internal error")
)

// AppError represents a structured application error. Every error kind here
// is recoverable: the session re-prompts or degrades, it never terminates.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidQuantity creates an error for a quantity that is not a positive integer.
func InvalidQuantity(message string) *AppError {
	return &AppError{
		Code:    "INVALID_QUANTITY",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// UnknownProduct creates an error for a product id absent from the catalog.
func UnknownProduct(id int) *AppError {
	return &AppError{
		Code:    "UNKNOWN_PRODUCT",
		Message: fmt.Sprintf("product with id %d not found in catalog", id),
		Err:     ErrNotFound,
	}
}

// UnknownDiscountCode creates an error for a discount code with no configured
// entry. Callers proceed with zero discount and surface a warning.
func UnknownDiscountCode(code string) *AppError {
	return &AppError{
		Code:    "UNKNOWN_DISCOUNT_CODE",
		Message: fmt.Sprintf("discount code %q is not recognized", code),
		Err:     ErrUnknownDiscount,
	}
}

// EmptyCart creates an error for an operation that needs a non-empty cart.
func EmptyCart(message string) *AppError {
	return &AppError{
		Code:    "EMPTY_CART",
		Message: message,
		Err:     ErrEmptyCart,
	}
}

// Internal creates an error for an unexpected failure.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// UserMessage returns the message suitable for showing to the user.
// Falls back to the raw error text for errors outside the AppError family.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
