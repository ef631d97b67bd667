package multisig

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// ApprovalTracker records which owners approve which transactions. A missing
// record means not approved.
type ApprovalTracker struct {
	bucket   orm.ModelBucket
	registry *Registry
	ledger   *Ledger
}

// NewApprovalTracker returns a tracker accepting approvals of the owners in
// given registry only, for pending transactions of given ledger.
func NewApprovalTracker(registry *Registry, ledger *Ledger) *ApprovalTracker {
	return &ApprovalTracker{
		bucket:   orm.NewModelBucket(ApprovalBucketName),
		registry: registry,
		ledger:   ledger,
	}
}

// IsApproved returns true if owner currently approves the transaction.
func (a *ApprovalTracker) IsApproved(db quorum.ReadOnlyKVStore, txID uint64, owner quorum.Address) (bool, error) {
	var rec Approval
	switch err := a.bucket.One(db, approvalKey(txID, owner), &rec); {
	case err == nil:
		return rec.Approved, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// Approve records the approval of owner. The transaction must exist and must
// not be executed. It fails with ErrAlreadyApproved if the owner approves
// the transaction already.
func (a *ApprovalTracker) Approve(ctx context.Context, db quorum.KVStore, txID uint64, owner quorum.Address) error {
	check := all(
		isOwner(a.registry, owner),
		txExists(a.ledger, txID),
		notExecuted(a.ledger, txID),
		notApproved(a, txID, owner),
	)
	if err := check(ctx, db); err != nil {
		return err
	}
	return a.set(db, txID, owner, true)
}

// Revoke removes the approval of owner. The transaction must exist and must
// not be executed. It fails with ErrNotYetApproved if the owner does not
// approve the transaction.
func (a *ApprovalTracker) Revoke(ctx context.Context, db quorum.KVStore, txID uint64, owner quorum.Address) error {
	check := all(
		isOwner(a.registry, owner),
		txExists(a.ledger, txID),
		notExecuted(a.ledger, txID),
		approved(a, txID, owner),
	)
	if err := check(ctx, db); err != nil {
		return err
	}
	return a.set(db, txID, owner, false)
}

func (a *ApprovalTracker) set(db quorum.KVStore, txID uint64, owner quorum.Address, approved bool) error {
	rec := Approval{Approved: approved}
	if err := a.bucket.Put(db, approvalKey(txID, owner), &rec); err != nil {
		return errors.Wrap(err, "cannot save approval")
	}
	return nil
}

// Count returns the number of owners approving the transaction. The owner
// list is scanned on every call, which is cheap for the small owner sets a
// wallet has.
func (a *ApprovalTracker) Count(db quorum.ReadOnlyKVStore, txID uint64) (uint32, error) {
	var n uint32
	for _, owner := range a.registry.owners {
		ok, err := a.IsApproved(db, txID, owner)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}
