package domain

import "errors"

var (
	// Lookup errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Validation errors, detected before any store interaction
	ErrInvalidAmount    = errors.New("amount must be a positive decimal with at most 2 fraction digits")
	ErrCurrencyMismatch = errors.New("transaction currency does not match account currency")

	// Ledger errors
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Store errors. ErrConcurrencyConflict is retryable and must never be
	// surfaced as a balance error.
	ErrStoreUnavailable    = errors.New("ledger store unavailable")
	ErrConcurrencyConflict = errors.New("concurrent update conflict, retry the operation")
)
