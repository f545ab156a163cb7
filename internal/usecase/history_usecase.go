package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/udeaghad/ravenpay/internal/domain"
)

// transactionCacheTTL bounds how long an immutable transaction record stays
// cached. Records never change after commit, so staleness is not a concern;
// the TTL only limits cache growth.
const transactionCacheTTL = time.Hour

// HistoryUseCase reads transaction history scoped to an account.
type HistoryUseCase struct {
	transactionRepo TransactionRepository
	cache           Cache
}

// NewHistoryUseCase creates a new HistoryUseCase. Cache may be nil.
func NewHistoryUseCase(transactionRepo TransactionRepository, cache Cache) *HistoryUseCase {
	return &HistoryUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// GetTransaction returns the transaction if and only if it belongs to the
// account. An id that resolves under a different account is not found.
func (uc *HistoryUseCase) GetTransaction(ctx context.Context, accountID, transactionID string) (*domain.Transaction, error) {
	cacheKey := "txn:" + accountID + ":" + transactionID

	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cacheKey); err == nil && raw != nil {
			var txn domain.Transaction
			if err := json.Unmarshal(raw, &txn); err == nil {
				return &txn, nil
			}
		}
	}

	txn, err := uc.transactionRepo.GetByIDForAccount(ctx, accountID, transactionID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(txn); err == nil {
			// Cache failures only cost the next read a store round trip.
			_ = uc.cache.Set(ctx, cacheKey, raw, transactionCacheTTL)
		}
	}

	return txn, nil
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListTransactions lists an account's transactions ordered by creation time
// descending. Re-querying with the same parameters and no intervening writes
// yields an identical sequence.
func (uc *HistoryUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	limit, offset := domain.ClampPagination(input.Limit, input.Offset)

	return uc.transactionRepo.ListByAccount(ctx, input.AccountID, limit, offset)
}
