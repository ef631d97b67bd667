package multisig

import (
	"fmt"

	"github.com/iov-one/quorum/errors"
)

// x/multisig reserves 1030 ~ 1039.
var (
	ErrOwnersNotProvided     = errors.Register(1030, "owners not provided")
	ErrInvalidThreshold      = errors.Register(1031, "invalid threshold")
	ErrInvalidOwnerAddress   = errors.Register(1032, "invalid owner address")
	ErrDuplicateOwner        = errors.Register(1033, "duplicate owner")
	ErrTransactionNotFound   = errors.Register(1034, "transaction not found")
	ErrAlreadyApproved       = errors.Register(1035, "already approved")
	ErrAlreadyExecuted       = errors.Register(1036, "already executed")
	ErrNotYetApproved        = errors.Register(1037, "not yet approved")
	ErrInsufficientApprovals = errors.Register(1038, "insufficient approvals")
	ErrExecutionFailed       = errors.Register(1039, "execution failed")
)

// InsufficientApprovalsError is returned when a transaction is executed
// before it reached the threshold. ErrInsufficientApprovals.Is matches it.
type InsufficientApprovalsError struct {
	TxID      uint64
	Count     uint32
	Threshold uint32
}

func (e *InsufficientApprovalsError) Error() string {
	return fmt.Sprintf("transaction %d has %d of %d approvals: %s",
		e.TxID, e.Count, e.Threshold, ErrInsufficientApprovals)
}

// Cause implements the causer interface.
func (e *InsufficientApprovalsError) Cause() error {
	return ErrInsufficientApprovals
}

// ExecutionFailedError is returned when the effect of a transaction failed
// and the execution was rolled back. It matches both ErrExecutionFailed and
// the error kind returned by the effect.
type ExecutionFailedError struct {
	TxID uint64
	Err  error
}

func (e *ExecutionFailedError) Error() string {
	return fmt.Sprintf("transaction %d: %s: %s", e.TxID, ErrExecutionFailed, e.Err)
}

// Cause implements the causer interface.
func (e *ExecutionFailedError) Cause() error {
	return ErrExecutionFailed
}

// Unpack exposes the effect error to errors.Is checks.
func (e *ExecutionFailedError) Unpack() []error {
	return []error{ErrExecutionFailed, e.Err}
}

// Format prints the stack trace of the effect error with %+v.
func (e *ExecutionFailedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "transaction %d: %s: %+v", e.TxID, ErrExecutionFailed, e.Err)
		return
	}
	fmt.Fprint(s, e.Error())
}
