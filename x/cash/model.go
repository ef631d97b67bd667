package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Set is the balance of a single address.
type Set struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Set) Reset()         { *m = Set{} }
func (m *Set) String() string { return proto.CompactTextString(m) }
func (*Set) ProtoMessage()    {}

var _ orm.Model = (*Set)(nil)

// Validate is a noop: any amount is a valid balance.
func (s *Set) Validate() error {
	return nil
}

// Balance returns the amount held by this set.
func (s *Set) Balance() quorum.Amount {
	return quorum.Amount(s.Amount)
}

// Add increases the balance or fails with ErrOverflow.
func (s *Set) Add(amount quorum.Amount) error {
	total, err := s.Balance().Add(amount)
	if err != nil {
		return err
	}
	s.Amount = uint64(total)
	return nil
}

// Subtract decreases the balance or fails with ErrInsufficientAmount.
func (s *Set) Subtract(amount quorum.Amount) error {
	rest, err := s.Balance().Subtract(amount)
	if err != nil {
		return err
	}
	s.Amount = uint64(rest)
	return nil
}

// Bucket is a type-safe wrapper around orm.ModelBucket
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{ModelBucket: orm.NewModelBucket(BucketName)}
}

// Get returns the set stored under given address or nil.
func (b Bucket) Get(db quorum.ReadOnlyKVStore, addr quorum.Address) (*Set, error) {
	var s Set
	switch err := b.One(db, addr, &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// GetOrCreate returns the set stored under given address or an empty one.
func (b Bucket) GetOrCreate(db quorum.ReadOnlyKVStore, addr quorum.Address) (*Set, error) {
	s, err := b.Get(db, addr)
	if err != nil || s != nil {
		return s, err
	}
	return &Set{}, nil
}

// Save stores the set of given address.
func (b Bucket) Save(db quorum.KVStore, addr quorum.Address, s *Set) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return b.Put(db, addr, s)
}
