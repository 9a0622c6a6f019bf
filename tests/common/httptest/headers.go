//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
)

const RequestIDHeader = "X-Request-ID"

// AssertGeneratedRequestID checks the response carries a server-minted ULID.
func AssertGeneratedRequestID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	id := w.Header().Get(RequestIDHeader)
	_, err := ulid.ParseStrict(id)
	assert.NoErrorf(t, err, "request id %q is not a ULID", id)
	return id
}
