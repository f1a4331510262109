package sqlconfig

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// The storage layer exposes a closed set of failure variants so the service
// layer can match them exhaustively instead of inspecting driver error codes.
var (
	ErrUniqueViolation = errors.New("sqlconfig: unique constraint violated")
	ErrRecordNotFound  = errors.New("sqlconfig: record not found")
)

const pqUniqueViolation = "23505"

// translateError maps driver-level failures to the storage error variants.
// Anything unrecognized passes through unchanged and is treated by callers
// as an unexpected persistence failure.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
		return ErrUniqueViolation
	}

	return err
}
