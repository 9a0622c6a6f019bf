//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"bargain-market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	base := errors.New("row lock timeout")

	marked := errs.Mark(base, errs.ErrConcurrentModification)

	assert.True(t, errs.Is(marked, base))
	assert.True(t, errs.Is(marked, errs.ErrConcurrentModification))
	assert.False(t, errors.Is(marked, errs.ErrConcurrentModification), "marks are invisible to errors.Is")
	assert.False(t, errs.Is(marked, errs.ErrNotFound))
	assert.Equal(t, "row lock timeout", marked.Error())

	t.Run("nil error yields the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
	})

	t.Run("survives further wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("accept: %w", errs.Wrap(marked, "save thread"))
		assert.True(t, errs.Is(wrapped, errs.ErrConcurrentModification))
	})

	t.Run("errors.As still reaches the cause", func(t *testing.T) {
		var target *pathError
		assert.True(t, errors.As(errs.Mark(&pathError{"/tmp"}, errs.ErrNotFound), &target))
		assert.Equal(t, "/tmp", target.path)
	})
}

// Sentinels derived with WithKind keep their own identity and their parent's.
func TestWithKind_DerivedSentinels(t *testing.T) {
	errBadQty := errs.WithKind(errs.ErrDomainValidation, "bad quantity")
	errBadRole := errs.WithKind(errs.ErrDomainValidation, "bad role")

	err := errs.Wrap(errBadQty, "add line")

	assert.True(t, errs.Is(err, errBadQty))
	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	assert.False(t, errs.Is(err, errBadRole))
}

type pathError struct{ path string }

func (e *pathError) Error() string { return "no such path " + e.path }

func TestWithKind(t *testing.T) {
	err := errs.WithKind(errs.ErrInvalidOffer, "offer %d too high", 120)

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidOffer))
	assert.Contains(t, err.Error(), "offer 120 too high")
	assert.NotEmpty(t, errs.ExtractStackLines(err, 5))
}
