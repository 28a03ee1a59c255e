package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount converts a non-negative decimal string ("12", "12.5", "12.50") to cents
func ParseAmount(amount string) (int64, error) {
	cents, err := ParseSignedAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents < 0 {
		return 0, fmt.Errorf("%w: negative value %s", errs.ErrInvalidAmount, amount)
	}
	return cents, nil
}

// ParseSignedAmount converts a decimal string that may carry a sign to cents.
// Used for admin adjustments and corrections.
func ParseSignedAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	// Reject sub-cent precision instead of rounding it away
	if !d.Round(MaxDecimalPlaces).Equal(d) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	cents := d.Shift(MaxDecimalPlaces)
	if !cents.IsInteger() || cents.GreaterThan(decimal.NewFromInt(maxCents)) || cents.LessThan(decimal.NewFromInt(-maxCents)) {
		return 0, fmt.Errorf("%w: out of range", errs.ErrInvalidAmount)
	}
	return cents.IntPart(), nil
}

// maxCents keeps sums of a few amounts far away from int64 overflow
const maxCents = int64(1) << 53

// FormatCents renders cents as a decimal string with exactly two places, e.g. -1015 -> "-10.15"
func FormatCents(cents int64) string {
	return decimal.New(cents, -MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}
