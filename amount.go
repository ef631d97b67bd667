package quorum

import (
	"math"
	"strconv"

	"github.com/iov-one/quorum/errors"
)

// Amount is a quantity of the single asset a wallet holds.
//
// Multi asset accounting is not supported. Every operation on amounts is
// checked and never silently wraps around.
type Amount uint64

// Add returns the sum of both amounts or ErrOverflow.
func (a Amount) Add(b Amount) (Amount, error) {
	if b > math.MaxUint64-a {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}

// Subtract returns a - b or ErrInsufficientAmount if b is greater than a.
func (a Amount) Subtract(b Amount) (Amount, error) {
	if b > a {
		return 0, errors.Wrapf(errors.ErrInsufficientAmount, "%d - %d", a, b)
	}
	return a - b, nil
}

// IsZero returns true if this amount is nothing.
func (a Amount) IsZero() bool {
	return a == 0
}

func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}
