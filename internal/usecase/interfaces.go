package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/udeaghad/ravenpay/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// GetByIDForUpdate reads the account row under a row-level lock so the
	// balance seen by a withdrawal decision cannot go stale before commit.
	GetByIDForUpdate(ctx context.Context, tx UnitOfWork, id string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx UnitOfWork, id string, balance decimal.Decimal, version int64, updatedAt time.Time) error
}

// TransactionRepository defines data access for ledger transactions. The
// interface is deliberately append-and-read only: stored transactions expose
// no update or delete path.
type TransactionRepository interface {
	Create(ctx context.Context, tx UnitOfWork, txn *domain.Transaction) error
	// GetByIDForAccount resolves a transaction only within the given account;
	// an id that exists under another account is not found.
	GetByIDForAccount(ctx context.Context, accountID, id string) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
	// SumByAccount returns sum(deposit) - sum(withdraw) over the account's
	// full history.
	SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// UnitOfWork represents one atomic database transaction: every read and write
// grouped under it commits or rolls back as a whole.
type UnitOfWork interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager starts units of work.
type TxManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// Retrier re-runs an operation on retryable store failures with backoff.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique, creation-ordered IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations for immutable reads.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
