package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// ParseAmount converts a caller-supplied amount into minor currency units.
// Amounts must be whole, non-negative integers; anything else is rejected
// before a statement is ever issued against the store.
func ParseAmount(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, trimmed)
	}
	if value.IsNegative() {
		return 0, fmt.Errorf("%w: amount cannot be negative", ErrInvalidAmount)
	}
	if !value.IsInteger() {
		return 0, fmt.Errorf("%w: amount must be a whole number of minor units", ErrInvalidAmount)
	}
	if value.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: amount is too large", ErrInvalidAmount)
	}

	return value.IntPart(), nil
}
