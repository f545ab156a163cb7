package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/udeaghad/ravenpay/internal/adapter/http/dto"
	"github.com/udeaghad/ravenpay/internal/domain"
	"github.com/udeaghad/ravenpay/internal/infrastructure/metrics"
	"github.com/udeaghad/ravenpay/internal/usecase"
)

type ledgerService interface {
	Deposit(ctx context.Context, input usecase.MovementInput) (*domain.Transaction, error)
	Withdraw(ctx context.Context, input usecase.MovementInput) (*domain.Transaction, error)
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// LedgerHandler handles deposit and withdrawal HTTP requests.
type LedgerHandler struct {
	ledger ledgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger ledgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// Deposit records an inbound credit.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeMovement(w, r)
	if !ok {
		return
	}

	txn, err := h.ledger.Deposit(r.Context(), input)
	if err != nil {
		metrics.LedgerErrors.WithLabelValues(errorKind(err)).Inc()
		writeError(w, mapDomainError(err), err.Error())

		return
	}

	metrics.DepositsCreated.Inc()
	metrics.MovementAmount.WithLabelValues("deposit").Observe(txn.Deposit.InexactFloat64())

	writeSuccess(w, http.StatusOK, "Transactions Successful", dto.TransactionFromDomain(txn))
}

// Withdraw records an outbound debit after the sufficiency check.
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeMovement(w, r)
	if !ok {
		return
	}

	txn, err := h.ledger.Withdraw(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			metrics.InsufficientBalanceRejections.Inc()
			writeError(w, http.StatusBadRequest, "Insufficient balance")

			return
		}

		metrics.LedgerErrors.WithLabelValues(errorKind(err)).Inc()
		writeError(w, mapDomainError(err), err.Error())

		return
	}

	metrics.WithdrawalsCreated.Inc()
	metrics.MovementAmount.WithLabelValues("withdraw").Observe(txn.Withdraw.InexactFloat64())

	writeSuccess(w, http.StatusOK, "Transactions Successful", dto.TransactionFromDomain(txn))
}

func decodeMovement(w http.ResponseWriter, r *http.Request) (usecase.MovementInput, bool) {
	var req dto.MovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return usecase.MovementInput{}, false
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return usecase.MovementInput{}, false
	}

	return input, true
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrCurrencyMismatch):
		return "currency_mismatch"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "concurrency_conflict"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "internal"
	}
}
