package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
)

// storeError classifies a driver failure. Connection loss (class 08),
// transaction rollbacks such as deadlocks and serialization failures
// (class 40), operator intervention (class 57) and context deadlines are
// transient, so they surface as [ErrStoreUnavailable] and callers may
// retry with backoff. Anything else is wrapped unchanged.
func storeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || transientCode(postgresError(err)) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}

func transientCode(code string) bool {
	if code == "" {
		return false
	}

	return pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsTransactionRollback(code) ||
		pgerrcode.IsOperatorIntervention(code)
}
