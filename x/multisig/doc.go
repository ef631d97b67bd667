/*
Package multisig implements a wallet that is controlled by a fixed group of
owners.

Any owner can submit a transaction. A transaction is executed only after at
least threshold owners approved it, and only once. Owners may revoke their
approval until the transaction is executed.

The wallet is made of four parts sharing the same store:

	Registry         the immutable owner set and threshold
	Ledger           the append only list of submitted transactions
	ApprovalTracker  the approval of every owner for every transaction
	Engine           the quorum check and the execution of the effect

A Wallet serializes all operations. Each operation runs in a cache wrap of the
store and is written only when it succeeds, so a failed operation leaves no
trace.

Executing a transaction marks it as executed before its effect runs. An effect
that calls back into the wallet, using the x.Reentrant handle it is given,
finds the transaction already executed and cannot run it again. When the
effect fails, its changes are dropped and the executed flag is explicitly
reverted, so the transaction can be executed again later.
*/
package multisig
