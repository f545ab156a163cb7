package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/udeaghad/ravenpay/internal/domain"
)

// LedgerUseCase applies deposits and withdrawals. It is the only code path
// that mutates an account balance, and it always does so together with an
// appended transaction record inside one unit of work.
type LedgerUseCase struct {
	txManager       TxManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
	retrier         Retrier
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TxManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	idGen IDGenerator,
	retrier Retrier,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		retrier:         retrier,
	}
}

// MovementInput represents one requested deposit or withdrawal.
type MovementInput struct {
	AccountID    string
	Amount       decimal.Decimal
	Remarks      string
	Currency     string
	Counterparty domain.Counterparty
}

func (in *MovementInput) validate() error {
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return err
	}

	if err := domain.ValidateCurrencyCode(in.Currency); err != nil {
		return err
	}

	return domain.ValidateRemarks(in.Remarks)
}

// Deposit credits the account and appends the transaction record. Duplicate
// references are allowed: two deposits carrying the same external reference
// create two transactions.
func (uc *LedgerUseCase) Deposit(ctx context.Context, input MovementInput) (*domain.Transaction, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	return uc.record(ctx, input, input.Amount, decimal.Zero)
}

// Withdraw debits the account if the balance is sufficient, appending the
// transaction record. The sufficiency check and the decrement commit as one
// atomic operation.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, input MovementInput) (*domain.Transaction, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	return uc.record(ctx, input, decimal.Zero, input.Amount)
}

// GetBalance returns the current balance with read-your-writes consistency
// relative to committed transactions.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return account.Balance, nil
}

// record runs the transaction recorder under the retrier, so serialization
// failures and transient store errors are retried with backoff before
// surfacing.
func (uc *LedgerUseCase) record(ctx context.Context, input MovementInput, deposit, withdraw decimal.Decimal) (*domain.Transaction, error) {
	var txn *domain.Transaction

	err := uc.retrier.Retry(ctx, func() error {
		created, err := uc.recordOnce(ctx, input, deposit, withdraw)
		if err != nil {
			return err
		}

		txn = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}

// recordOnce is the atomic unit of work: locked balance read, sufficiency
// check, transaction insert and balance write commit together or not at all.
func (uc *LedgerUseCase) recordOnce(ctx context.Context, input MovementInput, deposit, withdraw decimal.Decimal) (*domain.Transaction, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if err := account.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}

	newBalance := account.Balance.Add(deposit).Sub(withdraw)
	if newBalance.IsNegative() {
		return nil, domain.ErrInsufficientBalance
	}

	now := time.Now().UTC()

	currency := input.Currency
	if currency == "" {
		currency = account.Currency
	}

	txn := &domain.Transaction{
		ID:           uc.idGen.Generate(),
		AccountID:    account.ID,
		Deposit:      deposit,
		Withdraw:     withdraw,
		Remarks:      input.Remarks,
		Counterparty: input.Counterparty,
		Currency:     currency,
		CreatedAt:    now,
	}

	if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, account.Version+1, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return txn, nil
}
