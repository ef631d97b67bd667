/*
Package quorum defines the common interfaces shared by the quorum
packages, as well as implementations of the simpler building blocks
(when interfaces would be too much overhead).

A quorum wallet is a fixed set of owners that must collect a threshold of
approvals before a proposed value transfer is executed. The wallet itself
lives in x/multisig. This package provides what every extension needs:
key value store interfaces, identities (Condition and Address), the Amount
type and the context helpers used to pass the logger between layers.
Authentication lives in x (Authenticator) and x/sigs.

There should exist two functions for every XYZ of type T
that we want to support in a context:

  WithXYZ(context.Context, T) context.Context
  XYZ(context.Context) (val T, ok bool)
*/
package quorum
