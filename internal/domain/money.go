package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxTransactionAmount bounds a single movement.
const MaxTransactionAmount = "1000000000000" // 1 trillion

// ParseAmount parses a monetary amount supplied at the boundary. Amounts must
// be positive decimals representable at 2 fraction digits; anything else is
// rejected rather than coerced.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal", ErrInvalidAmount, raw)
	}

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("%w: %s has more than 2 fraction digits", ErrInvalidAmount, amount)
	}

	maxAmount, _ := decimal.NewFromString(MaxTransactionAmount)
	if amount.GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %s exceeds maximum %s", ErrInvalidAmount, amount, MaxTransactionAmount)
	}

	return amount, nil
}

// ValidateAmount checks an already-parsed amount against the same rules as
// ParseAmount.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: %s has more than 2 fraction digits", ErrInvalidAmount, amount)
	}

	maxAmount, _ := decimal.NewFromString(MaxTransactionAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: %s exceeds maximum %s", ErrInvalidAmount, amount, MaxTransactionAmount)
	}

	return nil
}

// FormatAmount renders an amount with exactly 2 fraction digits, the fixed
// monetary precision of the ledger.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// ParseBankCode parses a counterparty bank code. Codes arrive either as
// numbers or as numeric strings with leading zeros ("044") and are always
// represented as integers once inside the ledger.
func ParseBankCode(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	code, err := strconv.Atoi(raw)
	if err != nil || code < 0 {
		return 0, fmt.Errorf("invalid bank code %q", raw)
	}

	return code, nil
}
