package multisig

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Operations a Call can carry.
const (
	OpDeposit = "deposit"
	OpSubmit  = "submit"
	OpApprove = "approve"
	OpRevoke  = "revoke"
	OpExecute = "execute"
)

// Call is a single wallet operation as signed by its caller. A signature
// covers the encoded call, so it authorizes this operation with exactly
// these arguments and nothing else.
type Call struct {
	Op     string         `protobuf:"bytes,1,opt,name=op,proto3" json:"op,omitempty"`
	TxID   uint64         `protobuf:"varint,2,opt,name=tx_id,json=txId,proto3" json:"tx_id,omitempty"`
	Target quorum.Address `protobuf:"bytes,3,opt,name=target,proto3,casttype=github.com/iov-one/quorum.Address" json:"target,omitempty"`
	Value  quorum.Amount  `protobuf:"varint,4,opt,name=value,proto3,casttype=github.com/iov-one/quorum.Amount" json:"value,omitempty"`
	Data   []byte         `protobuf:"bytes,5,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Call) Reset()         { *m = Call{} }
func (m *Call) String() string { return proto.CompactTextString(m) }
func (*Call) ProtoMessage()    {}

// DepositCall returns the call of a deposit of value.
func DepositCall(value quorum.Amount) *Call {
	return &Call{Op: OpDeposit, Value: value}
}

// SubmitCall returns the call proposing a transaction.
func SubmitCall(to quorum.Address, value quorum.Amount, data []byte) *Call {
	return &Call{Op: OpSubmit, Target: to, Value: value, Data: data}
}

// ApproveCall returns the call approving given transaction.
func ApproveCall(txID uint64) *Call {
	return &Call{Op: OpApprove, TxID: txID}
}

// RevokeCall returns the call revoking the approval of given transaction.
func RevokeCall(txID uint64) *Call {
	return &Call{Op: OpRevoke, TxID: txID}
}

// ExecuteCall returns the call executing given transaction.
func ExecuteCall(txID uint64) *Call {
	return &Call{Op: OpExecute, TxID: txID}
}

// SignBytes returns the payload a caller signs with sigs.Sign.
func (m *Call) SignBytes() ([]byte, error) {
	switch m.Op {
	case OpDeposit, OpSubmit, OpApprove, OpRevoke, OpExecute:
	default:
		return nil, errors.Field("Op", errors.ErrInput, "unknown operation %q", m.Op)
	}
	raw, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode call")
	}
	return raw, nil
}
