//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"bargain-market/internal/infra"
	"bargain-market/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantKind     infra.RepositoryErrorKind
		wantConflict bool
	}{
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "uq_active_thread"}, infra.KindDuplicateKey, false},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated, false},
		{"check violation", &pgconn.PgError{Code: "23514"}, infra.KindCheckViolated, false},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, infra.KindVersionConflict, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, infra.KindVersionConflict, true},
		{"unknown sqlstate", &pgconn.PgError{Code: "XX000"}, infra.KindDBFailure, false},
		{"non-postgres error", errors.New("connection reset"), infra.KindDBFailure, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("insert thread", tt.err)

			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.Equal(t, tt.wantConflict, errs.Is(err, errs.ErrConcurrentModification))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestWrapRepoErr_ExplicitKind(t *testing.T) {
	err := infra.WrapRepoErr("order not found", nil, infra.KindNotFound)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Equal(t, "NOT_FOUND: order not found", err.Error())
}

func TestConstraintName(t *testing.T) {
	wrapped := infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505", ConstraintName: "uq_active_thread"})

	assert.Equal(t, "uq_active_thread", infra.ConstraintName(wrapped))
	assert.Empty(t, infra.ConstraintName(errors.New("plain")))
}
