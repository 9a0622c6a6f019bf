package infra

import (
	"context"
	"errors"
	"log/slog"

	"bargain-market/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
	KindVersionConflict    RepositoryErrorKind = "VERSION_CONFLICT"
)

// SQLSTATE codes the repositories react to.
var pgCodeKinds = map[string]RepositoryErrorKind{
	"23505": KindDuplicateKey,
	"23503": KindForeignKeyViolated,
	"23514": KindCheckViolated,
	"40001": KindVersionConflict, // serialization_failure
	"40P01": KindVersionConflict, // deadlock_detected
}

// RepositoryError is what every store returns. Op names the failed step;
// the driver error stays reachable through Unwrap.
type RepositoryError struct {
	Kind  RepositoryErrorKind
	Op    string
	cause error
}

func (e RepositoryError) Error() string {
	if e.cause == nil {
		return string(e.Kind) + ": " + e.Op
	}
	return string(e.Kind) + ": " + e.Op + ": " + e.cause.Error()
}

func (e RepositoryError) Unwrap() error {
	return e.cause
}

// WrapRepoErr classifies err by SQLSTATE unless an explicit kind is given.
// Serialization failures and deadlocks come back marked as
// ErrConcurrentModification so callers retry them like version conflicts.
func WrapRepoErr(op string, err error, kinds ...RepositoryErrorKind) error {
	kind := Classify(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	level := slog.LevelDebug
	if kind == KindDBFailure {
		level = slog.LevelError
	}
	attrs := []any{"op", op, "kind", string(kind)}
	if err != nil {
		attrs = append(attrs, "error", err.Error(), "constraint", ConstraintName(err))
	}
	slog.Log(context.Background(), level, "repository error", attrs...)

	var out error = RepositoryError{Kind: kind, Op: op, cause: err}
	if kind == KindVersionConflict && err != nil {
		out = errs.Mark(out, errs.ErrConcurrentModification)
	}
	return out
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	return errors.As(err, &e) && e.Kind == kind
}

// Classify maps a driver error to its kind; anything that is not a
// recognised Postgres error is a DB failure.
func Classify(err error) RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	if kind, ok := pgCodeKinds[pgErr.Code]; ok {
		return kind
	}
	return KindDBFailure
}

// ConstraintName returns the violated constraint, if err came from Postgres.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
