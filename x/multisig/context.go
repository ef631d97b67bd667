package multisig

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/x"
)

type contextKey int // local to the multisig module

const (
	contextKeyMultisig contextKey = iota
)

// WalletCondition returns the condition of the wallet with given name. The
// wallet holds its funds at the address of this condition.
func WalletCondition(name string) quorum.Condition {
	return quorum.NewCondition("multisig", "wallet", []byte(name))
}

// withWallet is a private method, as only this module
// can add a wallet signer
func withWallet(ctx context.Context, cond quorum.Condition) context.Context {
	return context.WithValue(ctx, contextKeyMultisig, cond)
}

// Authenticate reports the wallet whose transaction is being executed as a
// signer. Effects and receivers can use it to check who pays them.
type Authenticate struct {
}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the condition of the executing wallet, if any.
func (a Authenticate) GetConditions(ctx context.Context) []quorum.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyMultisig).(quorum.Condition)
	if val == nil {
		return nil
	}
	return []quorum.Condition{val}
}

// HasAddress returns true iff this address is in GetConditions
func (a Authenticate) HasAddress(ctx context.Context, addr quorum.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
