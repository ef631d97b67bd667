package sigs

import (
	"github.com/iov-one/quorum/errors"
)

// x/sigs reserves 1020 ~ 1029.
var (
	// ErrInvalidSequence is returned when a signature is made for a
	// sequence that is not the next expected one.
	ErrInvalidSequence = errors.Register(1020, "invalid sequence number")
)
