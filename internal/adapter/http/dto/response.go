package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/udeaghad/ravenpay/internal/domain"
	"github.com/udeaghad/ravenpay/internal/usecase"
)

// Envelope is the response wrapper of the public API.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Envelope status values.
const (
	StatusSuccess = "Success"
	StatusFail    = "fail"
)

// TransactionResponse represents a transaction in API responses. Monetary
// fields are rendered with exactly 2 fraction digits and bank codes as
// integers regardless of how they were supplied.
type TransactionResponse struct {
	ID            string    `json:"id"`
	AcctID        string    `json:"acct_id"`
	Deposit       string    `json:"deposit"`
	Withdraw      string    `json:"withdraw"`
	Remarks       string    `json:"remarks"`
	BankCode      int       `json:"bank_code"`
	Bank          string    `json:"bank"`
	AccountNumber string    `json:"account_number"`
	AccountName   string    `json:"account_name"`
	Reference     string    `json:"reference"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID,
		AcctID:        t.AccountID,
		Deposit:       domain.FormatAmount(t.Deposit),
		Withdraw:      domain.FormatAmount(t.Withdraw),
		Remarks:       t.Remarks,
		BankCode:      t.Counterparty.BankCode,
		Bank:          t.Counterparty.Bank,
		AccountNumber: t.Counterparty.AccountNumber,
		AccountName:   t.Counterparty.AccountName,
		Reference:     t.Counterparty.Reference,
		Currency:      t.Currency,
		CreatedAt:     t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Currency:  a.Currency,
		Balance:   domain.FormatAmount(a.Balance),
		CreatedAt: a.CreatedAt,
	}
}

// BalanceResponse represents a balance read.
type BalanceResponse struct {
	AcctID   string `json:"acct_id"`
	Balance  string `json:"balance"`
	Currency string `json:"currency,omitempty"`
}

// NewBalanceResponse builds a balance response.
func NewBalanceResponse(accountID string, balance decimal.Decimal, currency string) *BalanceResponse {
	return &BalanceResponse{
		AcctID:   accountID,
		Balance:  domain.FormatAmount(balance),
		Currency: currency,
	}
}

// ConsistencyResponse reports a balance-vs-ledger reconciliation.
type ConsistencyResponse struct {
	AcctID     string `json:"acct_id"`
	Balance    string `json:"balance"`
	LedgerSum  string `json:"ledger_sum"`
	Consistent bool   `json:"consistent"`
}

// ConsistencyFromReport converts a reconciliation report to a response.
func ConsistencyFromReport(r *usecase.ConsistencyReport) *ConsistencyResponse {
	return &ConsistencyResponse{
		AcctID:     r.AccountID,
		Balance:    domain.FormatAmount(r.Balance),
		LedgerSum:  domain.FormatAmount(r.LedgerSum),
		Consistent: r.Consistent(),
	}
}
