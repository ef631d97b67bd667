package multisig

import (
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

const (
	// TransactionBucketName is where we store the transactions
	TransactionBucketName = "tx"
	// ApprovalBucketName is where we store the approval records
	ApprovalBucketName = "approval"
	// SequenceName is the counter of transaction ids
	SequenceName = "id"

	// maxPayloadLength limits the opaque data attached to a transaction.
	maxPayloadLength = 64 * 1024
)

var isWalletName = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{1,64}$`).MatchString

// Config is the record a wallet is created from. It is stored as the
// "multisig" configuration of the store.
type Config struct {
	Owners    []quorum.Address `protobuf:"bytes,1,rep,name=owners,proto3,casttype=github.com/iov-one/quorum.Address" json:"owners,omitempty"`
	Threshold uint32           `protobuf:"varint,2,opt,name=threshold,proto3" json:"threshold,omitempty"`
	Name      string           `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *Config) Reset()         { *m = Config{} }
func (m *Config) String() string { return proto.CompactTextString(m) }
func (*Config) ProtoMessage()    {}

// Validate ensures the owner set and threshold can form a registry and that
// the name can identify the wallet.
func (c *Config) Validate() error {
	if _, err := NewRegistry(c.Owners, c.Threshold); err != nil {
		return err
	}
	if !isWalletName(c.Name) {
		return errors.Field("Name", errors.ErrInput, "invalid wallet name %q", c.Name)
	}
	return nil
}

// Transaction is an action proposed by an owner.
type Transaction struct {
	Target   quorum.Address `protobuf:"bytes,1,opt,name=target,proto3,casttype=github.com/iov-one/quorum.Address" json:"target,omitempty"`
	Value    quorum.Amount  `protobuf:"varint,2,opt,name=value,proto3,casttype=github.com/iov-one/quorum.Amount" json:"value,omitempty"`
	Payload  []byte         `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
	Executed bool           `protobuf:"varint,4,opt,name=executed,proto3" json:"executed,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return proto.CompactTextString(m) }
func (*Transaction) ProtoMessage()    {}

var _ orm.Model = (*Transaction)(nil)

// Validate ensures the transaction can be executed.
func (t *Transaction) Validate() error {
	var errs error
	if err := t.Target.Validate(); err != nil {
		errs = errors.AppendField(errs, "Target", err)
	} else if t.Target.IsNull() {
		errs = errors.Append(errs, errors.Field("Target", errors.ErrInput, "null address"))
	}
	if len(t.Payload) > maxPayloadLength {
		errs = errors.Append(errs, errors.Field("Payload", errors.ErrInput, "longer than %d bytes", maxPayloadLength))
	}
	return errs
}

// Approval is the consent of a single owner to a single transaction.
type Approval struct {
	Approved bool `protobuf:"varint,1,opt,name=approved,proto3" json:"approved,omitempty"`
}

func (m *Approval) Reset()         { *m = Approval{} }
func (m *Approval) String() string { return proto.CompactTextString(m) }
func (*Approval) ProtoMessage()    {}

var _ orm.Model = (*Approval)(nil)

// Validate is a noop: both states are valid.
func (a *Approval) Validate() error {
	return nil
}

// approvalKey is the transaction id followed by the owner address, so all
// approvals of a transaction share a prefix.
func approvalKey(txID uint64, owner quorum.Address) []byte {
	return append(orm.EncodeSequence(txID), owner...)
}
