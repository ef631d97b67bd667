package multisig

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
)

// Engine checks the quorum of transactions and executes them.
type Engine struct {
	registry  *Registry
	ledger    *Ledger
	approvals *ApprovalTracker
	effect    x.Effect
	wallet    quorum.Condition
}

// NewEngine returns an engine running the effect on behalf of the wallet
// identified by given condition.
func NewEngine(r *Registry, l *Ledger, a *ApprovalTracker, effect x.Effect, wallet quorum.Condition) *Engine {
	return &Engine{
		registry:  r,
		ledger:    l,
		approvals: a,
		effect:    effect,
		wallet:    wallet,
	}
}

// Execute runs the effect of a transaction that reached the threshold.
// The caller must be authorized by the owner guard before.
//
// The transaction is marked executed in db before the effect runs. The
// effect works on a cache wrap of db and gets a reentrant handle, created by
// reenter, bound to that wrap. When the effect fails or panics, the wrap is
// discarded, the executed flag is reverted in db and an
// ExecutionFailedError is returned.
func (e *Engine) Execute(
	ctx context.Context,
	db quorum.CacheableKVStore,
	txID uint64,
	reenter func(quorum.CacheableKVStore) x.Reentrant,
) error {
	if err := all(txExists(e.ledger, txID), notExecuted(e.ledger, txID))(ctx, db); err != nil {
		return err
	}
	tx, err := e.ledger.Get(db, txID)
	if err != nil {
		return err
	}
	count, err := e.approvals.Count(db, txID)
	if err != nil {
		return errors.Wrap(err, "cannot count approvals")
	}
	if count < e.registry.Threshold() {
		return &InsufficientApprovalsError{
			TxID:      txID,
			Count:     count,
			Threshold: e.registry.Threshold(),
		}
	}

	if err := e.ledger.markExecuted(db, txID, true); err != nil {
		return errors.Wrap(err, "cannot mark executed")
	}

	action := x.Action{
		TxID:    txID,
		Wallet:  e.wallet.Address(),
		Target:  tx.Target,
		Value:   tx.Value,
		Payload: tx.Payload,
	}
	inflight := db.CacheWrap()
	if err := e.apply(ctx, inflight, reenter(inflight), action); err != nil {
		inflight.Discard()
		if rerr := e.ledger.markExecuted(db, txID, false); rerr != nil {
			return errors.Wrapf(rerr, "cannot roll back transaction %d", txID)
		}
		return &ExecutionFailedError{TxID: txID, Err: err}
	}
	if err := inflight.Write(); err != nil {
		return errors.Wrap(err, "cannot write effect changes")
	}
	return nil
}

func (e *Engine) apply(ctx context.Context, db quorum.KVStore, wallet x.Reentrant, action x.Action) (err error) {
	defer errors.Recover(&err)
	ctx = withWallet(ctx, e.wallet)
	ctx = quorum.WithLogInfo(ctx, "tx", action.TxID)
	return e.effect.Apply(ctx, db, wallet, action)
}
