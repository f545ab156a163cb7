package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/udeaghad/ravenpay/internal/adapter/http/dto"
	"github.com/udeaghad/ravenpay/internal/domain"
	"github.com/udeaghad/ravenpay/internal/infrastructure/metrics"
	"github.com/udeaghad/ravenpay/internal/usecase"
)

type accountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	VerifyConsistency(ctx context.Context, accountID string) (*usecase.ConsistencyReport, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accounts accountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts accountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accounts.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	metrics.AccountsCreated.Inc()

	writeSuccess(w, http.StatusCreated, "Account created", dto.AccountFromDomain(account))
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID")
		return
	}

	account, err := h.accounts.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, "Account retrieved", dto.AccountFromDomain(account))
}

// Balance returns the account's current balance.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID")
		return
	}

	account, err := h.accounts.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, "Balance retrieved",
		dto.NewBalanceResponse(account.ID, account.Balance, account.Currency))
}

// Consistency reconciles the account's balance against its ledger.
func (h *AccountHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID")
		return
	}

	report, err := h.accounts.VerifyConsistency(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, "Consistency checked", dto.ConsistencyFromReport(report))
}
