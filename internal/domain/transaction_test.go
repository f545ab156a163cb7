package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_Amount(t *testing.T) {
	t.Parallel()

	deposit := &Transaction{Deposit: decimal.NewFromInt(2500)}
	if !deposit.Amount().Equal(decimal.NewFromInt(2500)) {
		t.Errorf("expected deposit amount 2500, got %s", deposit.Amount())
	}

	withdrawal := &Transaction{Withdraw: decimal.NewFromInt(10)}
	if !withdrawal.Amount().Equal(decimal.NewFromInt(-10)) {
		t.Errorf("expected withdrawal amount -10, got %s", withdrawal.Amount())
	}
}

func TestTransaction_IsDeposit(t *testing.T) {
	t.Parallel()

	deposit := &Transaction{Deposit: decimal.NewFromInt(100)}
	if !deposit.IsDeposit() {
		t.Error("expected deposit record to report IsDeposit")
	}

	withdrawal := &Transaction{Withdraw: decimal.NewFromInt(100)}
	if withdrawal.IsDeposit() {
		t.Error("expected withdrawal record to not report IsDeposit")
	}
}
