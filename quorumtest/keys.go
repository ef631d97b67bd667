// Package quorumtest provides helpers for tests that need identities and
// stores.
package quorumtest

import (
	"bytes"
	"sync/atomic"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/orm"
	"github.com/iov-one/quorum/store"
)

// seed is the root of all keys created by NewKey.
var seed = bytes.Repeat([]byte("quorumtest"), 4)

var keyIndex uint32

// NewKey returns a private key that no other NewKey call of this process
// returns. Keys are derived from a fixed seed, so test runs are repeatable.
func NewKey() *crypto.PrivateKey {
	n := atomic.AddUint32(&keyIndex, 1) - 1
	key, err := crypto.DeriveKey(seed, crypto.OwnerKeyPath(n))
	if err != nil {
		panic(err)
	}
	return key
}

// NewCondition returns a condition of a new key.
func NewCondition() quorum.Condition {
	return NewKey().PublicKey().Condition()
}

// NewAddress returns the address of a new key.
func NewAddress() quorum.Address {
	return NewCondition().Address()
}

// SequenceAddress returns an address that is unique for every n. Use it
// when a test needs stable, readable identities.
func SequenceAddress(n uint64) quorum.Address {
	return quorum.NewCondition("test", "seq", orm.EncodeSequence(n)).Address()
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation.
func ParseAddress(t testing.TB, encodedAddress string) quorum.Address {
	t.Helper()

	addr, err := quorum.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// MemStore returns a fresh in-memory store.
func MemStore() quorum.CacheableKVStore {
	return store.MemStore()
}
