package quorumtest

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/x"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convenience attribute when creating an authentication method for a
	// single signer.
	// When authenticating all signers are taken into account.
	Signer quorum.Condition
	// Signers represents an authentication of multiple signers.
	Signers []quorum.Condition
}

var _ x.Authenticator = (*Auth)(nil)

func (a *Auth) GetConditions(context.Context) []quorum.Condition {
	var res []quorum.Condition
	if a.Signer != nil {
		res = append(res, a.Signer)
	}
	return append(res, a.Signers...)
}

func (a *Auth) HasAddress(ctx context.Context, addr quorum.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth authenticates the signer stored in a context with WithSigner. Use
// it when a single wallet instance is called by several owners in one test.
type CtxAuth struct{}

var _ x.Authenticator = CtxAuth{}

type ctxKey int

const signerKey ctxKey = 0

// WithSigner returns a context authenticated as given condition by CtxAuth.
func WithSigner(ctx context.Context, signer quorum.Condition) context.Context {
	return context.WithValue(ctx, signerKey, signer)
}

func (CtxAuth) GetConditions(ctx context.Context) []quorum.Condition {
	val, _ := ctx.Value(signerKey).(quorum.Condition)
	if val == nil {
		return nil
	}
	return []quorum.Condition{val}
}

func (a CtxAuth) HasAddress(ctx context.Context, addr quorum.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
