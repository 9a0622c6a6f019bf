//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/usecase/queries"
	"bargain-market/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTripKeepsMicroseconds(t *testing.T) {
	loc := time.FixedZone("NPT", 5*3600+45*60)
	at := time.Date(2025, 3, 1, 10, 0, 0, 123456789, loc)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, time.UTC, gotAt.Location())
	assert.True(t, at.Truncate(time.Microsecond).Equal(gotAt))
}

func TestCursor_DecodeRejectsMalformed(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	testCases := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "%%%"},
		{"missing version", enc("1700000000_" + uuid.NewString())},
		{"unknown version", enc("v2:1700000000_" + uuid.NewString())},
		{"missing separator", enc("v1:1700000000")},
		{"bad timestamp", enc("v1:yesterday_" + uuid.NewString())},
		{"bad uuid", enc("v1:1700000000_not-a-uuid")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			testutil.RequireKind(t, err, queries.ErrInvalidCursor)
			testutil.RequireKind(t, err, errs.ErrDomainValidation)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
