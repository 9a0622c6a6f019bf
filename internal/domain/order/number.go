package order

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewNumber returns a time-sortable, human-facing order number.
func NewNumber(now time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return "ORD-" + ulid.MustNew(ulid.Timestamp(now), entropy).String()
}
