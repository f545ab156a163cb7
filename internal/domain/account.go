package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds spendable funds. Balance is the single source of truth and is
// only ever mutated together with an appended Transaction.
type Account struct {
	ID        string
	Name      string
	Email     string
	Currency  string
	Balance   decimal.Decimal
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateCurrency checks that a transaction currency is usable on this
// account. An account without a declared currency accepts any currency.
func (a *Account) ValidateCurrency(currency string) error {
	if a.Currency == "" || currency == "" {
		return nil
	}
	if a.Currency != currency {
		return ErrCurrencyMismatch
	}
	return nil
}

// ApplyCredit returns the balance after crediting amount.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// ApplyDebit returns the balance after debiting amount.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// CanDebit reports whether debiting amount keeps the balance non-negative.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return !a.Balance.Sub(amount).IsNegative()
}
