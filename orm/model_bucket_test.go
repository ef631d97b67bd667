package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/store"
)

type counter struct {
	Name  string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Count uint64 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *counter) Reset()         { *m = counter{} }
func (m *counter) String() string { return proto.CompactTextString(m) }
func (*counter) ProtoMessage()    {}

func (m *counter) Validate() error {
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

func TestModelBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnt")

	assert.Nil(t, b.Put(db, []byte("a"), &counter{Name: "first", Count: 3}))

	var got counter
	assert.Nil(t, b.One(db, []byte("a"), &got))
	assert.Equal(t, counter{Name: "first", Count: 3}, got)

	ok, err := b.Has(db, []byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	// stored under the bucket prefix
	raw, err := db.Get([]byte("cnt:a"))
	assert.Nil(t, err)
	if raw == nil {
		t.Fatal("model not stored under the bucket prefix")
	}
}

func TestModelBucketOneResetsDestination(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnt")
	assert.Nil(t, b.Put(db, []byte("a"), &counter{Name: "zero"}))

	got := counter{Name: "stale", Count: 99}
	assert.Nil(t, b.One(db, []byte("a"), &got))
	assert.Equal(t, counter{Name: "zero"}, got)
}

func TestModelBucketErrors(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnt")

	var got counter
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("missing"), &got))
	assert.IsErr(t, errors.ErrEmpty, b.Put(db, []byte("a"), &counter{}))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("missing")))

	assert.Nil(t, b.Put(db, []byte("a"), &counter{Name: "x"}))
	assert.Nil(t, b.Delete(db, []byte("a")))
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("a"), &got))
}

func TestNewModelBucketInvalidName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("Invalid-Name") })
}
