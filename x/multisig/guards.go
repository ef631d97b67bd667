package multisig

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
)

// guard is a precondition of an operation. It returns nil when the
// operation may proceed.
type guard func(ctx context.Context, db quorum.ReadOnlyKVStore) error

// all returns a guard that checks the given guards in order and returns the
// first failure.
func all(guards ...guard) guard {
	return func(ctx context.Context, db quorum.ReadOnlyKVStore) error {
		for _, g := range guards {
			if err := g(ctx, db); err != nil {
				return err
			}
		}
		return nil
	}
}

// callerOf returns the address of the main signer of the context or nil.
func callerOf(ctx context.Context, auth x.Authenticator) quorum.Address {
	signer := x.MainSigner(ctx, auth)
	if signer == nil {
		return nil
	}
	return signer.Address()
}

func onlyOwner(r *Registry, auth x.Authenticator) guard {
	return func(ctx context.Context, db quorum.ReadOnlyKVStore) error {
		caller := callerOf(ctx, auth)
		if caller == nil {
			return errors.Wrap(errors.ErrUnauthorized, "no signer")
		}
		return isOwner(r, caller)(ctx, db)
	}
}

func isOwner(r *Registry, addr quorum.Address) guard {
	return func(ctx context.Context, db quorum.ReadOnlyKVStore) error {
		if !r.IsOwner(addr) {
			return errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", addr)
		}
		return nil
	}
}

func txExists(l *Ledger, txID uint64) guard {
	return func(ctx context.Context, db quorum.ReadOnlyKVStore) error {
		_, err := l.Get(db, txID)
		return err
	}
}

func notExecuted(l *Ledger, txID uint64) guard {
	return func(ctx context.Context, db quorum.ReadOnlyKVStore) error {
		tx, err := l.Get(db, txID)
		if err != nil {
			return err
		}
		if tx.Executed {
			return errors.Wrapf(ErrAlreadyExecuted, "transaction %d", txID)
		}
		return nil
	}
}

func notApproved(a *ApprovalTracker, txID uint64, owner quorum.Address) guard {
	return func(ctx context.Context, db quorum.ReadOnlyKVStore) error {
		ok, err := a.IsApproved(db, txID, owner)
		if err != nil {
			return err
		}
		if ok {
			return errors.Wrapf(ErrAlreadyApproved, "transaction %d by %s", txID, owner)
		}
		return nil
	}
}

func approved(a *ApprovalTracker, txID uint64, owner quorum.Address) guard {
	return func(ctx context.Context, db quorum.ReadOnlyKVStore) error {
		ok, err := a.IsApproved(db, txID, owner)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrapf(ErrNotYetApproved, "transaction %d by %s", txID, owner)
		}
		return nil
	}
}
