package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/udeaghad/ravenpay/internal/domain"
)

// AccountUseCase handles account lifecycle and reconciliation reads. Identity
// and credential management live outside this service; accounts created here
// carry only the fields the ledger needs.
type AccountUseCase struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, transactionRepo TransactionRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name     string
	Email    string
	Currency string
}

// CreateAccount creates a new account with a zero balance.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	if input.Email != "" {
		if err := domain.ValidateEmail(input.Email); err != nil {
			return nil, err
		}
	}

	if err := domain.ValidateCurrencyCode(input.Currency); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Email:     input.Email,
		Currency:  input.Currency,
		Balance:   decimal.Zero,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ConsistencyReport compares an account's balance against its ledger.
type ConsistencyReport struct {
	AccountID string
	Balance   decimal.Decimal
	LedgerSum decimal.Decimal
}

// Consistent reports whether the balance is reconstructible from history.
func (r *ConsistencyReport) Consistent() bool {
	return r.Balance.Equal(r.LedgerSum)
}

// VerifyConsistency checks that balance == sum(deposit) - sum(withdraw) over
// the account's transaction history.
func (uc *AccountUseCase) VerifyConsistency(ctx context.Context, accountID string) (*ConsistencyReport, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	sum, err := uc.transactionRepo.SumByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &ConsistencyReport{
		AccountID: accountID,
		Balance:   account.Balance,
		LedgerSum: sum,
	}, nil
}
