//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"bargain-market/internal/infra"
	"bargain-market/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock through repository wrapping", infra.WrapRepoErr("lock thread", &pgconn.PgError{Code: "40P01"}), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"domain version conflict", errs.Mark(errors.New("version moved"), errs.ErrConcurrentModification), false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryable(tt.err))
		})
	}
}

func TestBackoff(t *testing.T) {
	for attempt := range txRetries {
		base := txBackoffBase << attempt
		for range 20 {
			d := backoff(attempt)
			assert.GreaterOrEqual(t, d, base)
			assert.LessOrEqual(t, d, base+base/5, "attempt %d", attempt)
		}
	}
	assert.Equal(t, 100*time.Millisecond, txBackoffBase)
}
