package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/udeaghad/ravenpay/internal/adapter/http/dto"
	"github.com/udeaghad/ravenpay/internal/domain"
	"github.com/udeaghad/ravenpay/internal/usecase"
)

type historyService interface {
	GetTransaction(ctx context.Context, accountID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
}

// HistoryHandler handles transaction history HTTP requests.
type HistoryHandler struct {
	history historyService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(history historyService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// Get retrieves a single transaction scoped to the account in the URL.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	transactionID := chi.URLParam(r, "txID")

	if accountID == "" || transactionID == "" {
		writeError(w, http.StatusBadRequest, "missing account or transaction ID")
		return
	}

	txn, err := h.history.GetTransaction(r.Context(), accountID, transactionID)
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, "Transaction retrieved", dto.TransactionFromDomain(txn))
}

// List lists an account's transactions newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID")
		return
	}

	transactions, err := h.history.ListTransactions(r.Context(), usecase.ListTransactionsInput{
		AccountID: accountID,
		Limit:     parseIntQuery(r, "limit", 20),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, "Transactions retrieved", dto.TransactionsFromDomain(transactions))
}
