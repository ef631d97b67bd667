package x

import (
	"context"

	"github.com/iov-one/quorum"
)

// Action is the external effect of an executed transaction.
type Action struct {
	// TxID is the identifier of the transaction being executed.
	TxID uint64
	// Wallet is the address holding the funds of the executing wallet.
	Wallet quorum.Address
	// Target, Value and Payload are copied from the transaction.
	Target  quorum.Address
	Value   quorum.Amount
	Payload []byte
}

// Effect carries out the action of a transaction that reached the quorum.
//
// Apply is called exactly once per execution attempt, after the transaction
// was marked as executed. All changes must be written to the given store:
// when Apply returns an error, they are discarded together with the
// executed flag.
//
// An effect may call back into the wallet, but only through the given
// Reentrant handle. Calling the wallet directly would block forever.
type Effect interface {
	Apply(ctx context.Context, db quorum.KVStore, wallet Reentrant, action Action) error
}

// EffectFunc adapts a function to the Effect interface.
type EffectFunc func(ctx context.Context, db quorum.KVStore, wallet Reentrant, action Action) error

// Apply implements Effect.
func (fn EffectFunc) Apply(ctx context.Context, db quorum.KVStore, wallet Reentrant, action Action) error {
	return fn(ctx, db, wallet, action)
}

// Reentrant is the view of a wallet given to an effect while one of the
// wallet's transactions executes. Every call works on the state of the
// running execution.
type Reentrant interface {
	Submit(ctx context.Context, to quorum.Address, value quorum.Amount, data []byte) (uint64, error)
	Approve(ctx context.Context, txID uint64) error
	Revoke(ctx context.Context, txID uint64) error
	Execute(ctx context.Context, txID uint64) error
}
