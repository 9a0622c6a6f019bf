// Package pgconv converts between domain-side Go values and the pgtype
// wrappers used by the generated queries. NULL maps to a nil pointer.
package pgconv

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return UUIDToPgtype(*id)
}

func UUIDPtrFromPgtype(v pgtype.UUID) *uuid.UUID {
	if !v.Valid {
		return nil
	}
	id := uuid.UUID(v.Bytes)
	return &id
}

// Amounts are whole currency units stored as BIGINT.
func Int64PtrToPgtype(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func Int64PtrFromPgtype(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// StringPtrToPgtype is used for optional filters; a NULL parameter
// disables the predicate in the query.
func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// TimeFromPgtype normalizes to UTC so values compare equal regardless of the
// session time zone.
func TimeFromPgtype(v pgtype.Timestamptz) time.Time {
	return v.Time.UTC()
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
