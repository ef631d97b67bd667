/*
Package sigs authenticates the callers of a wallet with ed25519 signatures.

A caller signs BuildSignBytes(payload, walletName, sequence) with the key of
its owner identity. VerifySignatures checks every signature, enforces that
the sequence of each key strictly increases (so a signed call cannot be
replayed) and returns the conditions of all signers. WithSigners stores them
in a context that the Authenticate type exposes to the wallet through the
x.Authenticator interface.
*/
package sigs
