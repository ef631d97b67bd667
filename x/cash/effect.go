package cash

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x"
)

// Receiver is a contract hook. It is called with the action of every
// transaction paying to the address it is registered for, after the coins
// were moved.
type Receiver interface {
	Receive(ctx context.Context, db quorum.KVStore, wallet x.Reentrant, action x.Action) error
}

// ReceiverFunc adapts a function to the Receiver interface.
type ReceiverFunc func(ctx context.Context, db quorum.KVStore, wallet x.Reentrant, action x.Action) error

// Receive implements Receiver.
func (fn ReceiverFunc) Receive(ctx context.Context, db quorum.KVStore, wallet x.Reentrant, action x.Action) error {
	return fn(ctx, db, wallet, action)
}

// TransferEffect pays the value of an executed transaction from the wallet
// holdings to the target.
type TransferEffect struct {
	bank      CoinMover
	receivers map[string]Receiver
}

var _ x.Effect = (*TransferEffect)(nil)

// NewTransferEffect returns an effect moving coins with given mover.
func NewTransferEffect(bank CoinMover) *TransferEffect {
	return &TransferEffect{
		bank:      bank,
		receivers: make(map[string]Receiver),
	}
}

// Register sets the receiver called for transactions targeting addr.
// Registering twice for the same address panics. Use this function only
// during a program startup phase.
func (e *TransferEffect) Register(addr quorum.Address, r Receiver) {
	key := addr.String()
	if _, ok := e.receivers[key]; ok {
		panic("receiver already registered for " + key)
	}
	e.receivers[key] = r
}

// Apply moves the coins and calls the receiver of the target, if any. A
// zero value transaction only calls the receiver.
func (e *TransferEffect) Apply(ctx context.Context, db quorum.KVStore, wallet x.Reentrant, action x.Action) error {
	if !action.Value.IsZero() {
		if err := e.bank.MoveCoins(db, action.Wallet, action.Target, action.Value); err != nil {
			return errors.Wrap(err, "transfer")
		}
	}
	if r, ok := e.receivers[action.Target.String()]; ok {
		if err := r.Receive(ctx, db, wallet, action); err != nil {
			return errors.Wrap(err, "receiver")
		}
	}
	return nil
}
