package multisig

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerSubmit(t *testing.T) {
	db := store.MemStore()
	ledger := NewLedger()
	target := quorumtest.NewAddress()

	n, err := ledger.Len(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)

	for want := uint64(0); want < 5; want++ {
		id, err := ledger.Submit(db, target, quorum.Amount(want), []byte{byte(want)})
		require.NoError(t, err)
		assert.Equal(t, want, id)

		n, err := ledger.Len(db)
		require.NoError(t, err)
		assert.Equal(t, want+1, n)
	}

	tx, err := ledger.Get(db, 3)
	require.NoError(t, err)
	assert.Equal(t, target, tx.Target)
	assert.Equal(t, quorum.Amount(3), tx.Value)
	assert.Equal(t, []byte{3}, tx.Payload)
	assert.False(t, tx.Executed)

	_, err = ledger.Get(db, 5)
	assert.True(t, ErrTransactionNotFound.Is(err))
	_, err = ledger.Get(db, ^uint64(0))
	assert.True(t, ErrTransactionNotFound.Is(err))
}

func TestLedgerRejectsInvalidTransaction(t *testing.T) {
	cases := map[string]struct {
		target  quorum.Address
		payload []byte
	}{
		"missing target": {
			target: nil,
		},
		"malformed target": {
			target: quorum.Address("short"),
		},
		"null target": {
			target: make(quorum.Address, quorum.AddressLength),
		},
		"payload too long": {
			target:  quorumtest.NewAddress(),
			payload: make([]byte, maxPayloadLength+1),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ledger := NewLedger()

			_, err := ledger.Submit(db, tc.target, 1, tc.payload)
			require.Error(t, err)
			assert.True(t, errors.ErrInput.Is(err), "unexpected error: %s", err)

			// No id is consumed by a rejected transaction.
			n, err := ledger.Len(db)
			require.NoError(t, err)
			assert.Equal(t, uint64(0), n)
		})
	}
}

func TestLedgerEmptyPayload(t *testing.T) {
	db := store.MemStore()
	ledger := NewLedger()

	id, err := ledger.Submit(db, quorumtest.NewAddress(), 0, nil)
	require.NoError(t, err)

	tx, err := ledger.Get(db, id)
	require.NoError(t, err)
	assert.Empty(t, tx.Payload)
	assert.Equal(t, quorum.Amount(0), tx.Value)
}

func TestLedgerMarkExecuted(t *testing.T) {
	db := store.MemStore()
	ledger := NewLedger()

	id, err := ledger.Submit(db, quorumtest.NewAddress(), 10, []byte("data"))
	require.NoError(t, err)

	require.NoError(t, ledger.markExecuted(db, id, true))
	tx, err := ledger.Get(db, id)
	require.NoError(t, err)
	assert.True(t, tx.Executed)

	require.NoError(t, ledger.markExecuted(db, id, false))
	tx, err = ledger.Get(db, id)
	require.NoError(t, err)
	assert.False(t, tx.Executed)
	assert.Equal(t, []byte("data"), tx.Payload)

	err = ledger.markExecuted(db, id+1, true)
	assert.True(t, ErrTransactionNotFound.Is(err))
}
