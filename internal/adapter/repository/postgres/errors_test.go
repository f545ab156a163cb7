package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/udeaghad/ravenpay/internal/domain"
)

func TestMapStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"serialization failure", &pgconn.PgError{Code: pgErrSerializationFailure}, domain.ErrConcurrencyConflict},
		{"deadlock", &pgconn.PgError{Code: pgErrDeadlock}, domain.ErrConcurrencyConflict},
		{"lock not available", &pgconn.PgError{Code: pgErrLockNotAvailable}, domain.ErrStoreUnavailable},
		{"context deadline", context.DeadlineExceeded, domain.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapStoreError(tt.err)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	t.Run("unrelated errors pass through", func(t *testing.T) {
		plain := errors.New("boom")
		if got := mapStoreError(plain); got != plain {
			t.Fatalf("expected error unchanged, got %v", got)
		}

		constraint := &pgconn.PgError{Code: "23505"}
		if got := mapStoreError(constraint); !errors.As(got, new(*pgconn.PgError)) {
			t.Fatalf("expected pg error unchanged, got %v", got)
		}
	})
}
