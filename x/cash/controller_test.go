package cash

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balance(t *testing.T, ctrl Controller, db quorum.ReadOnlyKVStore, addr quorum.Address) quorum.Amount {
	t.Helper()
	amount, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	return amount
}

func TestIssueCoins(t *testing.T) {
	db := store.MemStore()
	addr := quorumtest.NewAddress()
	addr2 := quorumtest.NewAddress()

	ctrl := NewController(NewBucket())

	assert.Equal(t, quorum.Amount(0), balance(t, ctrl, db, addr))

	require.NoError(t, ctrl.IssueCoins(db, addr, 500))
	require.NoError(t, ctrl.IssueCoins(db, addr, 250))
	assert.Equal(t, quorum.Amount(750), balance(t, ctrl, db, addr))
	assert.Equal(t, quorum.Amount(0), balance(t, ctrl, db, addr2))

	err := ctrl.IssueCoins(db, addr, ^quorum.Amount(0))
	assert.True(t, errors.ErrOverflow.Is(err))
	assert.Equal(t, quorum.Amount(750), balance(t, ctrl, db, addr))
}

func TestMoveCoins(t *testing.T) {
	src := quorumtest.NewAddress()
	dst := quorumtest.NewAddress()
	empty := quorumtest.NewAddress()

	cases := map[string]struct {
		from, to quorum.Address
		amount   quorum.Amount
		wantErr  *errors.Error
		wantSrc  quorum.Amount
		wantDst  quorum.Amount
	}{
		"move part": {
			from: src, to: dst, amount: 300,
			wantSrc: 700, wantDst: 300,
		},
		"move everything": {
			from: src, to: dst, amount: 1000,
			wantSrc: 0, wantDst: 1000,
		},
		"move to self": {
			from: src, to: src, amount: 400,
			wantSrc: 1000,
		},
		"insufficient funds": {
			from: src, to: dst, amount: 1001,
			wantErr: errors.ErrInsufficientAmount,
			wantSrc: 1000,
		},
		"empty sender": {
			from: empty, to: dst, amount: 1,
			wantErr: errors.ErrEmpty,
			wantSrc: 1000,
		},
		"zero amount": {
			from: src, to: dst, amount: 0,
			wantErr: errors.ErrAmount,
			wantSrc: 1000,
		},
		"invalid destination": {
			from: src, to: quorum.Address("short"), amount: 1,
			wantErr: errors.ErrInput,
			wantSrc: 1000,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewBucket())
			require.NoError(t, ctrl.IssueCoins(db, src, 1000))

			// run in a cache wrap, as the wallet does, so that a failed
			// transfer leaves no trace
			cache := db.CacheWrap()
			err := ctrl.MoveCoins(cache, tc.from, tc.to, tc.amount)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				cache.Discard()
			} else {
				require.NoError(t, err)
				require.NoError(t, cache.Write())
			}

			assert.Equal(t, tc.wantSrc, balance(t, ctrl, db, src))
			assert.Equal(t, tc.wantDst, balance(t, ctrl, db, dst))
		})
	}
}

func TestGenesisInitializer(t *testing.T) {
	addr := quorumtest.NewAddress()
	raw, err := json.Marshal([]GenesisAccount{{Address: addr, Amount: 42}})
	require.NoError(t, err)

	db := store.MemStore()
	opts := quorum.Options{"cash": raw}
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	ctrl := NewController(NewBucket())
	assert.Equal(t, quorum.Amount(42), balance(t, ctrl, db, addr))

	bad := quorum.Options{"cash": json.RawMessage(`[{"address": "", "amount": 1}]`)}
	assert.Error(t, Initializer{}.FromGenesis(bad, store.MemStore()))
}

func TestTransferEffect(t *testing.T) {
	wallet := quorumtest.NewAddress()
	target := quorumtest.NewAddress()
	contract := quorumtest.NewAddress()

	db := store.MemStore()
	ctrl := NewController(NewBucket())
	require.NoError(t, ctrl.IssueCoins(db, wallet, 10))

	var received []x.Action
	effect := NewTransferEffect(ctrl)
	effect.Register(contract, ReceiverFunc(func(ctx context.Context, db quorum.KVStore, w x.Reentrant, a x.Action) error {
		received = append(received, a)
		return nil
	}))
	assert.Panics(t, func() { effect.Register(contract, ReceiverFunc(nil)) })

	ctx := context.Background()
	require.NoError(t, effect.Apply(ctx, db, nil, x.Action{Wallet: wallet, Target: target, Value: 4}))
	assert.Equal(t, quorum.Amount(6), balance(t, ctrl, db, wallet))
	assert.Equal(t, quorum.Amount(4), balance(t, ctrl, db, target))
	assert.Len(t, received, 0)

	call := x.Action{TxID: 3, Wallet: wallet, Target: contract, Value: 1, Payload: []byte("hello")}
	require.NoError(t, effect.Apply(ctx, db, nil, call))
	require.Len(t, received, 1)
	assert.Equal(t, call, received[0])
	assert.Equal(t, quorum.Amount(1), balance(t, ctrl, db, contract))

	err := effect.Apply(ctx, db, nil, x.Action{Wallet: wallet, Target: target, Value: 100})
	assert.True(t, errors.ErrInsufficientAmount.Is(err))
}
