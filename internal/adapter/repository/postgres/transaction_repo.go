package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/udeaghad/ravenpay/internal/domain"
	"github.com/udeaghad/ravenpay/internal/infrastructure/postgres/generated"
	"github.com/udeaghad/ravenpay/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository. It exposes
// no update or delete: transaction rows are append-only by construction.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a transaction record within a unit of work.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.UnitOfWork, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:            txn.ID,
		AccountID:     txn.AccountID,
		Deposit:       decimalToNumeric(txn.Deposit),
		Withdraw:      decimalToNumeric(txn.Withdraw),
		Remarks:       txn.Remarks,
		BankCode:      int32(txn.Counterparty.BankCode),
		Bank:          txn.Counterparty.Bank,
		AccountNumber: txn.Counterparty.AccountNumber,
		AccountName:   txn.Counterparty.AccountName,
		Reference:     txn.Counterparty.Reference,
		Currency:      txn.Currency,
		CreatedAt:     timeToPgTimestamptz(txn.CreatedAt),
	})

	return mapStoreError(err)
}

// GetByIDForAccount retrieves a transaction only if it belongs to the account.
func (r *TransactionRepository) GetByIDForAccount(ctx context.Context, accountID, id string) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionForAccount(ctx, generated.GetTransactionForAccountParams{
		ID:        id,
		AccountID: accountID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, mapStoreError(err)
	}

	return rowToTransaction(row), nil
}

// ListByAccount retrieves an account's transactions newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByAccount(ctx, generated.ListTransactionsByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions, nil
}

// SumByAccount returns the signed sum of the account's full history.
func (r *TransactionRepository) SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	sum, err := r.queries.SumTransactionsByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, mapStoreError(err)
	}

	return numericToDecimal(sum), nil
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:        row.ID,
		AccountID: row.AccountID,
		Deposit:   numericToDecimal(row.Deposit),
		Withdraw:  numericToDecimal(row.Withdraw),
		Remarks:   row.Remarks,
		Counterparty: domain.Counterparty{
			BankCode:      int(row.BankCode),
			Bank:          row.Bank,
			AccountNumber: row.AccountNumber,
			AccountName:   row.AccountName,
			Reference:     row.Reference,
		},
		Currency:  row.Currency,
		CreatedAt: row.CreatedAt.Time,
	}
}
