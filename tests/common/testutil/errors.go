//go:build unit || e2e

package testutil

import (
	"testing"

	"bargain-market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertKind checks that err carries kind, either in its chain or as a mark.
// testify's ErrorIs goes through errors.Is and misses marks.
func AssertKind(t testing.TB, err, kind error, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	if errs.Is(err, kind) {
		return true
	}
	return assert.Fail(t, "error kind mismatch: expected "+kind.Error()+" in chain of: "+err.Error(), msgAndArgs...)
}

func RequireKind(t testing.TB, err, kind error, msgAndArgs ...any) {
	t.Helper()
	if !AssertKind(t, err, kind, msgAndArgs...) {
		t.FailNow()
	}
}
