package multisig

import (
	"context"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x"
)

// newTestWallet creates a wallet of n owners. Returned contexts are
// authenticated as the owner with the same index.
func newTestWallet(t testing.TB, n int, threshold uint32, opts ...Option) (*Wallet, []context.Context) {
	t.Helper()

	owners := make([]quorum.Address, n)
	ctxs := make([]context.Context, n)
	for i := range owners {
		cond := quorumtest.NewCondition()
		owners[i] = cond.Address()
		ctxs[i] = quorumtest.WithSigner(context.Background(), cond)
	}
	cfg := Config{Name: "treasury", Owners: owners, Threshold: threshold}
	opts = append([]Option{WithAuth(quorumtest.CtxAuth{})}, opts...)
	w, err := New(store.MemStore(), cfg, opts...)
	if err != nil {
		t.Fatalf("cannot create wallet: %+v", err)
	}
	return w, ctxs
}

// strangerCtx returns a context authenticated as somebody who is not an
// owner of any wallet.
func strangerCtx() context.Context {
	return quorumtest.WithSigner(context.Background(), quorumtest.NewCondition())
}

// recorder is an effect that records every action it is called with and
// returns err.
type recorder struct {
	actions []x.Action
	err     error
}

func (r *recorder) Apply(ctx context.Context, db quorum.KVStore, wallet x.Reentrant, action x.Action) error {
	r.actions = append(r.actions, action)
	return r.err
}

// eventLog collects observed events.
type eventLog struct {
	events []x.Event
}

func (l *eventLog) OnEvent(e x.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) kinds() []x.EventKind {
	kinds := make([]x.EventKind, len(l.events))
	for i, e := range l.events {
		kinds[i] = e.Kind
	}
	return kinds
}
