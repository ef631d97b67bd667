// Package bech32 converts addresses to and from their bech32 text form, as
// used by "bech32:" owner entries of a wallet genesis.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/quorum/errors"
)

// Decode returns the human readable part and the payload of a bech32 string.
func Decode(raw string) (string, []byte, error) {
	hrp, words, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32 %q: %s", raw, err)
	}
	payload, err := regroup(words, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, payload, nil
}

// DecodeAddress works like Decode but also requires the payload to be an
// address of given length.
func DecodeAddress(raw string, length int) (string, []byte, error) {
	hrp, payload, err := Decode(raw)
	if err != nil {
		return "", nil, err
	}
	if len(payload) != length {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32 %q holds %d bytes, want %d", raw, len(payload), length)
	}
	return hrp, payload, nil
}

// Encode returns the bech32 string of payload under given human readable
// part.
func Encode(hrp string, payload []byte) ([]byte, error) {
	if hrp == "" {
		return nil, errors.Wrap(errors.ErrInput, "empty human readable part")
	}
	words, err := regroup(payload, 8, 5, true)
	if err != nil {
		return nil, err
	}
	raw, err := bech32.Encode(hrp, words)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 encode: %s", err)
	}
	return []byte(raw), nil
}

// regroup converts between bytes and the 5 bit words bech32 carries.
func regroup(data []byte, from, to uint8, pad bool) ([]byte, error) {
	out, err := bech32.ConvertBits(data, from, to, pad)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "regroup %d to %d bits: %s", from, to, err)
	}
	return out, nil
}
