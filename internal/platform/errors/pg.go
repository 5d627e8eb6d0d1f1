package errors

import (
	"context"
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the journal can hit
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
	sqlStateUndefinedTable   = "42P01"
	sqlStateQueryCanceled    = "57014" // statement_timeout
	sqlStateCannotConnectNow = "57P03"
	sqlStateAdminShutdown    = "57P01"
	sqlStateReadOnlyTx       = "25006"
)

var codeBySQLState = map[string]ErrorCode{
	sqlStateUniqueViolation:  ErrorCodeDB,
	sqlStateNotNullViolation: ErrorCodeValidation,
	sqlStateCheckViolation:   ErrorCodeValidation,
	sqlStateUndefinedTable:   ErrorCodeUnavailable,
	sqlStateQueryCanceled:    ErrorCodeTimeout,
	sqlStateCannotConnectNow: ErrorCodeUnavailable,
	sqlStateAdminShutdown:    ErrorCodeUnavailable,
	sqlStateReadOnlyTx:       ErrorCodeUnavailable,
}

// PgError returns the postgres error behind err, if any
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a postgres error with the given SQLSTATE
func IsSQLState(err error, state string) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == state
}

// DBErrorCode classifies a store error. Deadlines map to ErrorCodeTimeout,
// known SQLSTATEs to their class, everything else to ErrorCodeDB.
func DBErrorCode(err error) ErrorCode {
	if stderrs.Is(err, context.DeadlineExceeded) {
		return ErrorCodeTimeout
	}
	if pgErr, ok := PgError(err); ok {
		if c, ok := codeBySQLState[pgErr.Code]; ok {
			return c
		}
	}
	return ErrorCodeDB
}

// FromPostgres wraps a store error under its class with msg, nil stays nil.
// A not null or check violation names the column when postgres reports one.
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	out := &Error{code: DBErrorCode(err), msg: msg, orig: err}
	if pgErr, ok := PgError(err); ok && out.code == ErrorCodeValidation {
		out.field = pgErr.ColumnName
	}
	return out
}
