package util

import (
	"fmt"
	"math"
	"strconv"
)

// Amounts cross the API as decimal numbers; internally everything is int64
// cents so balance math never touches floats.

const maxAmount = 10_000_000 // single-operation cap

// ToCents converts a decimal amount to cents, rounding to the nearest cent.
func ToCents(amount float64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %v", amount)
	}
	if amount >= maxAmount {
		return 0, fmt.Errorf("amount too large, got %v", amount)
	}
	return int64(math.Round(amount * 100)), nil
}

// FormatCents renders cents as a two-decimal string.
func FormatCents(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100.0, 'f', 2, 64)
}
