package x

import (
	"fmt"

	"github.com/iov-one/quorum"
)

// EventKind tells which operation produced an Event.
type EventKind int

const (
	EventDeposit EventKind = iota + 1
	EventSubmit
	EventApprove
	EventRevoke
	EventExecute
)

func (k EventKind) String() string {
	switch k {
	case EventDeposit:
		return "Deposit"
	case EventSubmit:
		return "Submit"
	case EventApprove:
		return "Approve"
	case EventRevoke:
		return "Revoke"
	case EventExecute:
		return "Execute"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a notification about a committed wallet operation. Only the
// fields relevant to the kind are set:
//
//	Deposit: Sender, Value
//	Submit:  TxID
//	Approve: Owner, TxID
//	Revoke:  Owner, TxID
//	Execute: TxID
type Event struct {
	Kind   EventKind
	TxID   uint64
	Owner  quorum.Address
	Sender quorum.Address
	Value  quorum.Amount
}

// Observer is notified about events, in the order they happened, once the
// operation that raised them is committed.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// OnEvent implements Observer.
func (fn ObserverFunc) OnEvent(e Event) {
	fn(e)
}
