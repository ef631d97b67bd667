package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// SignCodeV1 is the current way to prefix the bytes we use to build
// a signature
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// StdSignature is a signature of a call together with the key that made it.
type StdSignature struct {
	Pubkey    *crypto.PublicKey
	Signature []byte
	Sequence  uint64
}

// Validate ensures the signature is well formed.
func (s *StdSignature) Validate() error {
	if s == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	if err := s.Pubkey.Validate(); err != nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if len(s.Signature) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}

// Sign produces a StdSignature of payload for given wallet and sequence.
func Sign(signer crypto.Signer, payload []byte, walletName string, seq uint64) (*StdSignature, error) {
	bz, err := BuildSignBytes(payload, walletName, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(bz)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &StdSignature{
		Pubkey:    signer.PublicKey(),
		Signature: sig,
		Sequence:  seq,
	}, nil
}

// VerifySignatures checks all the signatures of a call, which must have at
// least one.
//
// returns list of signer conditions or error if any signature is invalid
func VerifySignatures(db quorum.KVStore, payload []byte, walletName string, sigs []*StdSignature) ([]quorum.Condition, error) {
	if len(sigs) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signatures")
	}
	signers := make([]quorum.Condition, 0, len(sigs))
	for i, sig := range sigs {
		signer, err := VerifySignature(db, sig, payload, walletName)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, signer)
	}
	return signers, nil
}

// VerifySignature checks one signature against the payload, and updates
// the sequence of the signing key in the store
func VerifySignature(db quorum.KVStore, sig *StdSignature, payload []byte, walletName string) (quorum.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	bucket := NewBucket()
	user, err := bucket.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}

	toSign, err := BuildSignBytes(payload, walletName, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !sig.Pubkey.Verify(toSign, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}

	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := bucket.Save(db, user); err != nil {
		return nil, err
	}
	return sig.Pubkey.Condition(), nil
}

/*
BuildSignBytes combines all info on the call before signing

We use the following format:

version | len(walletName) | walletName   | nonce              | payload
4bytes  | uint8           | ascii string | uint64 (bigendian) | call payload

This is then prehashed with sha512 before fed into
the public key signing/verification step
*/
func BuildSignBytes(payload []byte, walletName string, seq uint64) ([]byte, error) {
	if len(walletName) == 0 || len(walletName) > 255 {
		return nil, errors.Wrapf(errors.ErrInput, "wallet name: %q", walletName)
	}

	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, seq)

	output := make([]byte, 0, 4+1+len(walletName)+8+len(payload))
	output = append(output, SignCodeV1...)
	output = append(output, uint8(len(walletName)))
	output = append(output, []byte(walletName)...)
	output = append(output, nonce...)
	output = append(output, payload...)

	// now, we take the sha512 hash of the result,
	// so we have a constant length output to feed into eddsa
	hashed := sha512.Sum512(output)
	return hashed[:], nil
}
