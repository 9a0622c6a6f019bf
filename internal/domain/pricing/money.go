package pricing

import (
	"fmt"
	"math"

	"bargain-market/internal/pkg/errs"
)

// Money is an amount in minor currency units (paisa). Arithmetic is exact:
// a result that does not fit in int64 is ErrInvalidPrice, never a wrapped value.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.WithKind(errs.ErrInvalidPrice, "amount cannot be negative: %d", amount)
	}
	return Money{amount: amount}, nil
}

// NewPrice accepts only strictly positive amounts.
func NewPrice(amount int64) (Money, error) {
	if amount <= 0 {
		return Money{}, errs.WithKind(errs.ErrInvalidPrice, "price must be positive: %d", amount)
	}
	return Money{amount: amount}, nil
}

// MoneyOf skips validation; use it for values already persisted.
func MoneyOf(amount int64) Money {
	return Money{amount: amount}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

func (m Money) Add(other Money) (Money, error) {
	sum := m.amount + other.amount
	if (other.amount > 0 && sum < m.amount) || (other.amount < 0 && sum > m.amount) {
		return Money{}, errs.WithKind(errs.ErrInvalidPrice, "%d + %d overflows", m.amount, other.amount)
	}
	return Money{amount: sum}, nil
}

func (m Money) Mul(quantity int) (Money, error) {
	q := int64(quantity)
	switch {
	case q < 0:
		return Money{}, errs.WithKind(errs.ErrInvalidPrice, "negative quantity %d", quantity)
	case q > 0 && (m.amount > math.MaxInt64/q || m.amount < math.MinInt64/q):
		return Money{}, errs.WithKind(errs.ErrInvalidPrice, "%d x %d overflows", m.amount, quantity)
	}
	return Money{amount: m.amount * q}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
