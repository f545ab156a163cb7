package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Counterparty describes the other side of a money movement. The fields are
// stored as supplied and never validated against any external authority.
type Counterparty struct {
	BankCode      int
	Bank          string
	AccountNumber string
	AccountName   string
	Reference     string
}

// Transaction is one immutable ledger record. Exactly one of Deposit and
// Withdraw is non-zero. Records are append-only: there is no update or delete
// path anywhere in the codebase.
type Transaction struct {
	ID           string
	AccountID    string
	Deposit      decimal.Decimal
	Withdraw     decimal.Decimal
	Remarks      string
	Counterparty Counterparty
	Currency     string
	CreatedAt    time.Time
}

// Amount returns the signed movement of this record (credits positive,
// debits negative).
func (t *Transaction) Amount() decimal.Decimal {
	return t.Deposit.Sub(t.Withdraw)
}

// IsDeposit reports whether this record credits the account.
func (t *Transaction) IsDeposit() bool {
	return t.Deposit.IsPositive()
}
