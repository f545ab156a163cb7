package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/udeaghad/ravenpay/internal/domain"
	"github.com/udeaghad/ravenpay/internal/usecase"
	"github.com/udeaghad/ravenpay/tests/testutil"
)

func TestAccountLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	_, accountUC, _ := newLedgerStack(testDB)

	t.Run("create and fetch", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		created, err := accountUC.CreateAccount(ctx, usecase.CreateAccountInput{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Currency: "NGN",
		})
		if err != nil {
			t.Fatalf("create account failed: %v", err)
		}

		if !created.Balance.IsZero() {
			t.Errorf("expected zero opening balance, got %s", created.Balance)
		}

		fetched, err := accountUC.GetAccount(ctx, created.ID)
		if err != nil {
			t.Fatalf("get account failed: %v", err)
		}
		if fetched.Name != "Jane Doe" || fetched.Email != "jane@example.com" {
			t.Errorf("unexpected account: %+v", fetched)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		_, err := accountUC.GetAccount(ctx, testutil.GenerateID())
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected account not found, got %v", err)
		}
	})
}
