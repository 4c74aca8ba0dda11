package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorKind is the closed taxonomy of storage constraint failures exposed to
// the HTTP boundary.
type ErrorKind string

const (
	KindUniqueViolation     ErrorKind = "unique_violation"
	KindForeignKeyViolation ErrorKind = "foreign_key_violation"
	KindNotNullViolation    ErrorKind = "not_null_violation"
	KindCheckViolation      ErrorKind = "check_violation"
	KindUnknown             ErrorKind = "unknown"
)

// DBError is a driver-independent view of a storage error.
type DBError struct {
	Kind       ErrorKind
	Message    string
	Code       string
	Detail     string
	Constraint string
}

// Normalize classifies an arbitrary error into the DBError taxonomy. It walks
// the wrapped chain looking for a driver error carrying a SQLSTATE code, then
// falls back to message patterns so non-Postgres drivers still classify.
// It never fails; anything unrecognized comes back as KindUnknown.
func Normalize(err error) *DBError {
	if err == nil {
		return &DBError{Kind: KindUnknown, Message: "unknown database error"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		out := &DBError{
			Message:    pgErr.Message,
			Code:       pgErr.Code,
			Detail:     pgErr.Detail,
			Constraint: pgErr.ConstraintName,
		}
		switch pgErr.Code {
		case "23505":
			out.Kind = KindUniqueViolation
		case "23503":
			out.Kind = KindForeignKeyViolation
		case "23502":
			out.Kind = KindNotNullViolation
		case "23514":
			out.Kind = KindCheckViolation
		default:
			out.Kind = classifyMessage(pgErr.Message)
		}
		return out
	}

	msg := err.Error()
	return &DBError{Kind: classifyMessage(msg), Message: msg}
}

func classifyMessage(msg string) ErrorKind {
	lower := strings.ToLower(msg)
	switch {
	case containsAny(lower, "unique_violation", "duplicate key", "duplicate entry", "unique constraint failed"):
		return KindUniqueViolation
	case containsAny(lower, "foreign key", "referenced"):
		return KindForeignKeyViolation
	case containsAny(lower, "not null", "null value in column"):
		return KindNotNullViolation
	case containsAny(lower, "check constraint"):
		return KindCheckViolation
	default:
		return KindUnknown
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
