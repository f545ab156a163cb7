package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/udeaghad/ravenpay/internal/domain"
)

// PostgreSQL error codes surfaced under concurrent row access.
const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlock             = "40P01"
	pgErrLockNotAvailable     = "55P03"
)

// mapStoreError translates driver-level failures into the ledger's error
// taxonomy. Serialization failures stay distinct from balance errors so
// callers retry instead of reporting insufficient funds.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlock:
			return fmt.Errorf("%w: %s", domain.ErrConcurrencyConflict, pgErr.Code)
		case pgErrLockNotAvailable:
			return fmt.Errorf("%w: lock not available", domain.ErrStoreUnavailable)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return err
}
