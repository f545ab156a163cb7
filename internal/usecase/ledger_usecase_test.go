package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/udeaghad/ravenpay/internal/domain"
	"github.com/udeaghad/ravenpay/internal/usecase"
	"github.com/udeaghad/ravenpay/internal/usecase/mocks"
)

func seedAccount(t *testing.T, repo *mocks.MockAccountRepository, acc *domain.Account) {
	t.Helper()
	if err := repo.Create(context.Background(), acc); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
}

func TestLedgerUseCase_Deposit(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.MovementInput
		setupMocks  func(*mocks.MockAccountRepository, *mocks.MockTransactionRepository)
		expectError bool
		errorType   error
		wantBalance string
	}{
		{
			name: "successful deposit",
			input: usecase.MovementInput{
				AccountID: "acc-1",
				Amount:    decimal.NewFromInt(2500),
				Remarks:   "initial funding",
			},
			setupMocks: func(accRepo *mocks.MockAccountRepository, txnRepo *mocks.MockTransactionRepository) {
				seedAccount(t, accRepo, &domain.Account{ID: "acc-1", Currency: "NGN"})
			},
			wantBalance: "2500",
		},
		{
			name: "duplicate reference creates a second transaction",
			input: usecase.MovementInput{
				AccountID:    "acc-1",
				Amount:       decimal.NewFromInt(100),
				Counterparty: domain.Counterparty{Reference: "ref-1"},
			},
			setupMocks: func(accRepo *mocks.MockAccountRepository, txnRepo *mocks.MockTransactionRepository) {
				seedAccount(t, accRepo, &domain.Account{ID: "acc-1", Currency: "NGN", Balance: decimal.NewFromInt(100)})
				txnRepo.Create(context.Background(), nil, &domain.Transaction{
					ID:           "txn-0",
					AccountID:    "acc-1",
					Deposit:      decimal.NewFromInt(100),
					Counterparty: domain.Counterparty{Reference: "ref-1"},
				})
			},
			wantBalance: "200",
		},
		{
			name: "reject zero amount",
			input: usecase.MovementInput{
				AccountID: "acc-1",
				Amount:    decimal.Zero,
			},
			setupMocks: func(accRepo *mocks.MockAccountRepository, txnRepo *mocks.MockTransactionRepository) {
				seedAccount(t, accRepo, &domain.Account{ID: "acc-1"})
			},
			expectError: true,
			errorType:   domain.ErrInvalidAmount,
		},
		{
			name: "reject sub-cent precision",
			input: usecase.MovementInput{
				AccountID: "acc-1",
				Amount:    decimal.NewFromFloat(10.005),
			},
			setupMocks: func(accRepo *mocks.MockAccountRepository, txnRepo *mocks.MockTransactionRepository) {
				seedAccount(t, accRepo, &domain.Account{ID: "acc-1"})
			},
			expectError: true,
			errorType:   domain.ErrInvalidAmount,
		},
		{
			name: "reject currency mismatch",
			input: usecase.MovementInput{
				AccountID: "acc-1",
				Amount:    decimal.NewFromInt(100),
				Currency:  "USD",
			},
			setupMocks: func(accRepo *mocks.MockAccountRepository, txnRepo *mocks.MockTransactionRepository) {
				seedAccount(t, accRepo, &domain.Account{ID: "acc-1", Currency: "NGN"})
			},
			expectError: true,
			errorType:   domain.ErrCurrencyMismatch,
		},
		{
			name: "account not found",
			input: usecase.MovementInput{
				AccountID: "missing",
				Amount:    decimal.NewFromInt(100),
			},
			setupMocks:  func(accRepo *mocks.MockAccountRepository, txnRepo *mocks.MockTransactionRepository) {},
			expectError: true,
			errorType:   domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accRepo := mocks.NewMockAccountRepository()
			txnRepo := mocks.NewMockTransactionRepository()
			txMgr := mocks.NewMockTxManager()
			idGen := mocks.NewMockIDGenerator()
			retrier := mocks.NewMockRetrier()

			tt.setupMocks(accRepo, txnRepo)

			uc := usecase.NewLedgerUseCase(txMgr, accRepo, txnRepo, idGen, retrier)
			txn, err := uc.Deposit(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Fatalf("expected error %v, got %v", tt.errorType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if txn == nil {
				t.Fatal("expected transaction, got nil")
			}
			if !txn.Deposit.Equal(tt.input.Amount) {
				t.Errorf("expected deposit %s, got %s", tt.input.Amount, txn.Deposit)
			}
			if !txn.Withdraw.IsZero() {
				t.Errorf("expected zero withdraw on a deposit, got %s", txn.Withdraw)
			}

			balance, err := uc.GetBalance(context.Background(), tt.input.AccountID)
			if err != nil {
				t.Fatalf("failed to read balance: %v", err)
			}
			want, _ := decimal.NewFromString(tt.wantBalance)
			if !balance.Equal(want) {
				t.Errorf("expected balance %s, got %s", want, balance)
			}
		})
	}
}

func TestLedgerUseCase_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		balance     decimal.Decimal
		amount      decimal.Decimal
		expectError bool
		errorType   error
		wantBalance string
	}{
		{
			name:        "successful withdrawal",
			balance:     decimal.NewFromInt(2500),
			amount:      decimal.NewFromInt(10),
			wantBalance: "2490",
		},
		{
			name:        "withdraw entire balance",
			balance:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(100),
			wantBalance: "0",
		},
		{
			name:        "insufficient balance",
			balance:     decimal.NewFromInt(2490),
			amount:      decimal.NewFromInt(20000),
			expectError: true,
			errorType:   domain.ErrInsufficientBalance,
		},
		{
			name:        "withdraw from zero balance",
			balance:     decimal.Zero,
			amount:      decimal.NewFromFloat(0.01),
			expectError: true,
			errorType:   domain.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accRepo := mocks.NewMockAccountRepository()
			txnRepo := mocks.NewMockTransactionRepository()
			txMgr := mocks.NewMockTxManager()
			idGen := mocks.NewMockIDGenerator()
			retrier := mocks.NewMockRetrier()

			seedAccount(t, accRepo, &domain.Account{ID: "acc-1", Currency: "NGN", Balance: tt.balance})

			uc := usecase.NewLedgerUseCase(txMgr, accRepo, txnRepo, idGen, retrier)
			txn, err := uc.Withdraw(context.Background(), usecase.MovementInput{
				AccountID: "acc-1",
				Amount:    tt.amount,
			})

			if tt.expectError {
				if !errors.Is(err, tt.errorType) {
					t.Fatalf("expected error %v, got %v", tt.errorType, err)
				}

				// A rejected withdrawal leaves no trace: no record, same balance.
				if txnRepo.Count() != 0 {
					t.Errorf("expected no transaction record, found %d", txnRepo.Count())
				}
				balance, _ := uc.GetBalance(context.Background(), "acc-1")
				if !balance.Equal(tt.balance) {
					t.Errorf("expected balance unchanged at %s, got %s", tt.balance, balance)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !txn.Withdraw.Equal(tt.amount) {
				t.Errorf("expected withdraw %s, got %s", tt.amount, txn.Withdraw)
			}

			balance, err := uc.GetBalance(context.Background(), "acc-1")
			if err != nil {
				t.Fatalf("failed to read balance: %v", err)
			}
			want, _ := decimal.NewFromString(tt.wantBalance)
			if !balance.Equal(want) {
				t.Errorf("expected balance %s, got %s", want, balance)
			}
		})
	}
}

func TestLedgerUseCase_RecordFailureRollsBack(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	txMgr := mocks.NewMockTxManager()
	idGen := mocks.NewMockIDGenerator()
	retrier := mocks.NewMockRetrier()

	seedAccount(t, accRepo, &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(500)})

	storeErr := errors.New("insert failed")
	txnRepo.CreateFunc = func(ctx context.Context, tx usecase.UnitOfWork, txn *domain.Transaction) error {
		return storeErr
	}

	uc := usecase.NewLedgerUseCase(txMgr, accRepo, txnRepo, idGen, retrier)
	_, err := uc.Deposit(context.Background(), usecase.MovementInput{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(100),
	})

	if !errors.Is(err, storeErr) {
		t.Fatalf("expected insert error to surface, got %v", err)
	}

	if len(txMgr.Units) != 1 {
		t.Fatalf("expected 1 unit of work, got %d", len(txMgr.Units))
	}
	if txMgr.Units[0].Committed {
		t.Error("expected unit of work to not be committed")
	}
	if !txMgr.Units[0].RolledBack {
		t.Error("expected unit of work to be rolled back")
	}

	balance, _ := uc.GetBalance(context.Background(), "acc-1")
	if !balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected balance unchanged at 500, got %s", balance)
	}
}

func TestLedgerUseCase_RetriesConcurrencyConflicts(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	txMgr := mocks.NewMockTxManager()
	idGen := mocks.NewMockIDGenerator()
	retrier := mocks.NewMockRetrier()

	seedAccount(t, accRepo, &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(100)})

	// First attempt conflicts, second sees the unlocked row.
	attempts := 0
	accRepo.GetByIDForUpdateFunc = func(ctx context.Context, tx usecase.UnitOfWork, id string) (*domain.Account, error) {
		attempts++
		if attempts == 1 {
			return nil, domain.ErrConcurrencyConflict
		}
		return accRepo.GetByID(ctx, id)
	}

	retrier.RetryFunc = func(ctx context.Context, operation func() error) error {
		var err error
		for range [3]struct{}{} {
			if err = operation(); err == nil || !errors.Is(err, domain.ErrConcurrencyConflict) {
				return err
			}
		}
		return err
	}

	uc := usecase.NewLedgerUseCase(txMgr, accRepo, txnRepo, idGen, retrier)
	txn, err := uc.Withdraw(context.Background(), usecase.MovementInput{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(50),
		Remarks:   "contended withdrawal",
	})

	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected 2 locked reads, got %d", attempts)
	}
	if txn == nil || !txn.Withdraw.Equal(decimal.NewFromInt(50)) {
		t.Errorf("unexpected transaction: %+v", txn)
	}

	balance, _ := uc.GetBalance(context.Background(), "acc-1")
	if !balance.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected balance 50, got %s", balance)
	}
}

func TestLedgerUseCase_CurrencyInheritedFromAccount(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	txMgr := mocks.NewMockTxManager()
	idGen := mocks.NewMockIDGenerator()
	retrier := mocks.NewMockRetrier()

	seedAccount(t, accRepo, &domain.Account{ID: "acc-1", Currency: "NGN"})

	uc := usecase.NewLedgerUseCase(txMgr, accRepo, txnRepo, idGen, retrier)
	txn, err := uc.Deposit(context.Background(), usecase.MovementInput{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(100),
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.Currency != "NGN" {
		t.Errorf("expected currency NGN inherited from account, got %q", txn.Currency)
	}
	if txn.CreatedAt.IsZero() || txn.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC creation timestamp, got %v", txn.CreatedAt)
	}
}
