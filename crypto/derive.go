package crypto

import (
	"fmt"

	"github.com/iov-one/quorum/errors"
	"github.com/stellar/go/exp/crypto/derivation"
)

// OwnerKeyPath returns the derivation path of the n-th owner key of a seed.
func OwnerKeyPath(n uint32) string {
	return fmt.Sprintf("m/44'/234'/%d'", n)
}

// DeriveKey returns the ed25519 key found at given SLIP-0010 path of a
// seed. Only hardened indexes are supported by ed25519 derivation.
// The same seed and path always produce the same key, so an owner can
// recover the key that controls a wallet from a backed up seed.
func DeriveKey(seed []byte, path string) (*PrivateKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, errors.Wrapf(errors.ErrInput, "seed must be 16 to 64 bytes, got %d", len(seed))
	}
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "path %q: %s", path, err)
	}
	return PrivKeyEd25519FromSeed(k.Key), nil
}
