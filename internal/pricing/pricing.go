// Package pricing resolves discount codes against a static table and computes
// the final charged total. The resolver is pure: no state, no I/O, one
// request/response step per checkout.
package pricing

import (
	"strings"

	apperrors "github.com/utafrali/cartsim/pkg/errors"
)

// Quote is the outcome of applying a discount code to a subtotal.
type Quote struct {
	Total float64 `json:"total"`
	Rate  float64 `json:"rate"`
}

// DefaultCodes is the configured discount table. Rates are fractions of the
// subtotal in [0, 1). FREESHIP's 0.95 is a configuration value carried as-is.
func DefaultCodes() map[string]float64 {
	return map[string]float64{
		"HOLA10":   0.10,
		"BANO15":   0.15,
		"FREESHIP": 0.95,
	}
}

// Resolver maps discount codes to rates. Codes are matched case-insensitively
// and independent of surrounding whitespace.
type Resolver struct {
	codes map[string]float64
}

// NewResolver creates a resolver over the given code table.
func NewResolver(codes map[string]float64) *Resolver {
	return &Resolver{codes: codes}
}

// NewDefaultResolver creates a resolver over the built-in code table.
func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultCodes())
}

// Apply computes the final total for a subtotal and an optional code.
//
// An empty or all-whitespace code applies no discount and returns no error.
// A non-empty code with no table entry also applies no discount but returns
// an UnknownDiscountCode error; the quote alongside it is still valid, so
// callers warn and continue rather than abort. Only one code applies per
// checkout; compounding is not supported.
func (r *Resolver) Apply(subtotal float64, code string) (Quote, error) {
	normalized := Normalize(code)
	if normalized == "" {
		return Quote{Total: subtotal, Rate: 0}, nil
	}

	rate, ok := r.codes[normalized]
	if !ok {
		return Quote{Total: subtotal, Rate: 0}, apperrors.UnknownDiscountCode(normalized)
	}

	return Quote{
		Total: subtotal - subtotal*rate,
		Rate:  rate,
	}, nil
}

// Normalize trims surrounding whitespace and upper-cases a code for lookup.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
