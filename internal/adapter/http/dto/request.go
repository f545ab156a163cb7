package dto

import (
	"strings"

	"github.com/udeaghad/ravenpay/internal/domain"
	"github.com/udeaghad/ravenpay/internal/usecase"
)

// BankCode accepts a counterparty bank code supplied either as a JSON number
// or as a numeric string with leading zeros ("044").
type BankCode string

// UnmarshalJSON keeps the raw digits; parsing to an integer happens
// explicitly in ToUseCaseInput.
func (b *BankCode) UnmarshalJSON(data []byte) error {
	*b = BankCode(strings.Trim(string(data), `"`))
	return nil
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Currency string `json:"currency"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:     r.Name,
		Email:    r.Email,
		Currency: strings.ToUpper(strings.TrimSpace(r.Currency)),
	}
}

// MovementRequest represents a deposit or withdrawal request. The field names
// mirror the public API: "id" is the account id, and monetary fields arrive
// as strings so malformed input is rejected instead of coerced.
type MovementRequest struct {
	ID            string   `json:"id"`
	Amount        string   `json:"amount"`
	Remarks       string   `json:"remarks"`
	BankCode      BankCode `json:"bank_code"`
	Bank          string   `json:"bank"`
	AccountNumber string   `json:"account_number"`
	AccountName   string   `json:"account_name"`
	Reference     string   `json:"reference"`
	Currency      string   `json:"currency"`
}

// ToUseCaseInput converts to use case input, parsing the amount and bank code.
func (r *MovementRequest) ToUseCaseInput() (usecase.MovementInput, error) {
	amount, err := domain.ParseAmount(r.Amount)
	if err != nil {
		return usecase.MovementInput{}, err
	}

	bankCode, err := domain.ParseBankCode(string(r.BankCode))
	if err != nil {
		return usecase.MovementInput{}, err
	}

	return usecase.MovementInput{
		AccountID: r.ID,
		Amount:    amount,
		Remarks:   r.Remarks,
		Currency:  strings.ToUpper(strings.TrimSpace(r.Currency)),
		Counterparty: domain.Counterparty{
			BankCode:      bankCode,
			Bank:          r.Bank,
			AccountNumber: r.AccountNumber,
			AccountName:   r.AccountName,
			Reference:     r.Reference,
		},
	}, nil
}
