package multisig

import (
	"context"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/store"
)

func TestGuards(t *testing.T) {
	owner := quorumtest.NewCondition()
	stranger := quorumtest.NewCondition()
	r, err := NewRegistry([]quorum.Address{owner.Address()}, 1)
	assert.Nil(t, err)

	db := store.MemStore()
	ledger := NewLedger()
	tracker := NewApprovalTracker(r, ledger)
	auth := quorumtest.CtxAuth{}

	executed, err := ledger.Submit(db, quorumtest.NewAddress(), 1, nil)
	assert.Nil(t, err)
	assert.Nil(t, ledger.markExecuted(db, executed, true))
	pending, err := ledger.Submit(db, quorumtest.NewAddress(), 1, nil)
	assert.Nil(t, err)
	assert.Nil(t, tracker.Approve(context.Background(), db, pending, owner.Address()))

	ownerCtx := quorumtest.WithSigner(context.Background(), owner)
	strangerCtx := quorumtest.WithSigner(context.Background(), stranger)

	cases := map[string]struct {
		ctx     context.Context
		guard   guard
		wantErr *errors.Error
	}{
		"owner": {
			ctx:   ownerCtx,
			guard: onlyOwner(r, auth),
		},
		"stranger": {
			ctx:     strangerCtx,
			guard:   onlyOwner(r, auth),
			wantErr: errors.ErrUnauthorized,
		},
		"anonymous": {
			ctx:     context.Background(),
			guard:   onlyOwner(r, auth),
			wantErr: errors.ErrUnauthorized,
		},
		"existing transaction": {
			ctx:   ownerCtx,
			guard: txExists(ledger, pending),
		},
		"missing transaction": {
			ctx:     ownerCtx,
			guard:   txExists(ledger, 2),
			wantErr: ErrTransactionNotFound,
		},
		"pending transaction": {
			ctx:   ownerCtx,
			guard: notExecuted(ledger, pending),
		},
		"executed transaction": {
			ctx:     ownerCtx,
			guard:   notExecuted(ledger, executed),
			wantErr: ErrAlreadyExecuted,
		},
		"approved": {
			ctx:   ownerCtx,
			guard: approved(tracker, pending, owner.Address()),
		},
		"not approved": {
			ctx:     ownerCtx,
			guard:   approved(tracker, executed, owner.Address()),
			wantErr: ErrNotYetApproved,
		},
		"already approved": {
			ctx:     ownerCtx,
			guard:   notApproved(tracker, pending, owner.Address()),
			wantErr: ErrAlreadyApproved,
		},
		"all pass": {
			ctx:   ownerCtx,
			guard: all(onlyOwner(r, auth), txExists(ledger, pending), notExecuted(ledger, pending)),
		},
		"all returns the first failure": {
			ctx:     strangerCtx,
			guard:   all(txExists(ledger, pending), onlyOwner(r, auth), notExecuted(ledger, executed)),
			wantErr: errors.ErrUnauthorized,
		},
		"all of nothing": {
			ctx:   context.Background(),
			guard: all(),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.guard(tc.ctx, db))
		})
	}
}
