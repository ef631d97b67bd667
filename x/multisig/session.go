package multisig

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
)

// session runs wallet operations on top of a store without locking. A top
// level operation uses a session over the wallet store. An executing effect
// gets a session over its in-flight store, so reentrant calls see the
// transaction as executed already.
type session struct {
	wallet *Wallet
	db     quorum.CacheableKVStore
	// auth tells who is calling.
	auth x.Authenticator
	// events collects the events of the whole top level operation.
	events *[]x.Event
}

var _ x.Reentrant = (*session)(nil)

// atomic runs fn in a cache wrap of the session store. When fn fails,
// nothing it wrote nor any event it raised is kept.
func (s *session) atomic(fn func(db quorum.CacheableKVStore) error) error {
	mark := len(*s.events)
	wrap := s.db.CacheWrap()
	if err := fn(wrap); err != nil {
		wrap.Discard()
		*s.events = (*s.events)[:mark]
		return err
	}
	if err := wrap.Write(); err != nil {
		*s.events = (*s.events)[:mark]
		return errors.Wrap(err, "cannot write")
	}
	return nil
}

func (s *session) emit(e x.Event) {
	*s.events = append(*s.events, e)
}

func (s *session) reenter(db quorum.CacheableKVStore) x.Reentrant {
	return &session{wallet: s.wallet, db: db, auth: s.auth, events: s.events}
}

// Submit implements x.Reentrant.
func (s *session) Submit(ctx context.Context, to quorum.Address, value quorum.Amount, data []byte) (uint64, error) {
	w := s.wallet
	var txID uint64
	err := s.atomic(func(db quorum.CacheableKVStore) error {
		if err := onlyOwner(w.registry, s.auth)(ctx, db); err != nil {
			return err
		}
		var err error
		txID, err = w.ledger.Submit(db, to, value, data)
		if err != nil {
			return err
		}
		s.emit(x.Event{Kind: x.EventSubmit, TxID: txID})
		return nil
	})
	if err != nil {
		return 0, err
	}
	w.log(ctx).Info("transaction submitted",
		"tx", txID, "owner", callerOf(ctx, s.auth), "target", to, "value", value)
	return txID, nil
}

// Approve implements x.Reentrant.
func (s *session) Approve(ctx context.Context, txID uint64) error {
	w := s.wallet
	caller := callerOf(ctx, s.auth)
	var count uint32
	err := s.atomic(func(db quorum.CacheableKVStore) error {
		if err := onlyOwner(w.registry, s.auth)(ctx, db); err != nil {
			return err
		}
		if err := w.approvals.Approve(ctx, db, txID, caller); err != nil {
			return err
		}
		s.emit(x.Event{Kind: x.EventApprove, TxID: txID, Owner: caller})

		var err error
		count, err = w.approvals.Count(db, txID)
		return err
	})
	if err != nil {
		return err
	}
	w.log(ctx).Debug("transaction approved", "tx", txID, "owner", caller, "count", count)
	return nil
}

// Revoke implements x.Reentrant.
func (s *session) Revoke(ctx context.Context, txID uint64) error {
	w := s.wallet
	caller := callerOf(ctx, s.auth)
	var count uint32
	err := s.atomic(func(db quorum.CacheableKVStore) error {
		if err := onlyOwner(w.registry, s.auth)(ctx, db); err != nil {
			return err
		}
		if err := w.approvals.Revoke(ctx, db, txID, caller); err != nil {
			return err
		}
		s.emit(x.Event{Kind: x.EventRevoke, TxID: txID, Owner: caller})

		var err error
		count, err = w.approvals.Count(db, txID)
		return err
	})
	if err != nil {
		return err
	}
	w.log(ctx).Debug("approval revoked", "tx", txID, "owner", caller, "count", count)
	return nil
}

// Execute implements x.Reentrant.
func (s *session) Execute(ctx context.Context, txID uint64) error {
	w := s.wallet
	err := s.atomic(func(db quorum.CacheableKVStore) error {
		if err := onlyOwner(w.registry, s.auth)(ctx, db); err != nil {
			return err
		}
		ctx := quorum.WithLogger(ctx, w.log(ctx))
		if err := w.engine.Execute(ctx, db, txID, s.reenter); err != nil {
			return err
		}
		s.emit(x.Event{Kind: x.EventExecute, TxID: txID})
		return nil
	})
	if err != nil {
		if ErrExecutionFailed.Is(err) {
			w.log(ctx).Error("transaction execution failed", "tx", txID, "err", err)
		}
		return err
	}
	w.log(ctx).Info("transaction executed", "tx", txID, "owner", callerOf(ctx, s.auth))
	return nil
}

func (s *session) deposit(ctx context.Context, value quorum.Amount) error {
	w := s.wallet
	sender := callerOf(ctx, s.auth)
	if sender == nil {
		return errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	err := s.atomic(func(db quorum.CacheableKVStore) error {
		if err := w.bank.MoveCoins(db, sender, w.Address(), value); err != nil {
			return errors.Wrap(err, "cannot move coins")
		}
		s.emit(x.Event{Kind: x.EventDeposit, Sender: sender, Value: value})
		return nil
	})
	if err != nil {
		return err
	}
	w.log(ctx).Info("deposit", "sender", sender, "value", value)
	return nil
}
