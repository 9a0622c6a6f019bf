//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// AssertSuccessResponse checks the status and decodes a 2xx body into target
// when one is given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target != nil && w.Code >= 200 && w.Code < 300 {
		assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains
// msgSubstr. An empty msgSubstr only checks the envelope decodes.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msgSubstr string) {
	t.Helper()

	env := decodeError(t, w, expectedStatus)
	if msgSubstr != "" {
		assert.Contains(t, env.Error.Message, msgSubstr)
	}
}

// AssertErrorCode checks the machine-readable code clients branch on.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, code string) {
	t.Helper()

	env := decodeError(t, w, expectedStatus)
	assert.Equal(t, code, env.Error.Code)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) errorEnvelope {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "body: %s", w.Body.String())
	var env errorEnvelope
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}
