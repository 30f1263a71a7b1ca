// Package repository provides small generic helpers shared by the
// database-backed domain systems: row scanning and mapping driver errors
// onto domain errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgDataExceptionClass is the SQLSTATE class for values PostgreSQL refuses
// to store, such as NUL bytes in text (22021) or \u0000 in jsonb (22P05).
const pgDataExceptionClass = "22"

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ScanFunc converts the current row into a T.
type ScanFunc[T any] func(Scanner) (T, error)

// QueryOne runs q and scans exactly one row.
// sql.ErrNoRows is returned unwrapped so callers can map it with MapError.
func QueryOne[T any](ctx context.Context, db Querier, q string, args []any, scan ScanFunc[T]) (T, error) {
	return scan(db.QueryRowContext(ctx, q, args...))
}

// QueryMany runs q and scans every row. An empty result is a non-nil empty slice.
func QueryMany[T any](ctx context.Context, db Querier, q string, args []any, scan ScanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	return results, rows.Err()
}

// Exec runs q and returns the number of affected rows.
func Exec(ctx context.Context, db Querier, q string, args ...any) (int64, error) {
	result, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// MapError converts sql.ErrNoRows to notFound and PostgreSQL data exceptions
// to invalid, keeping the driver error in the chain. Any other error is
// returned as-is.
func MapError(err error, notFound, invalid error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	if IsDataException(err) {
		return errors.Join(invalid, err)
	}
	return err
}

// IsDataException reports whether err is a PostgreSQL class 22 error.
func IsDataException(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgDataExceptionClass)
	}
	return false
}
