package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGet(t *testing.T, kv ReadOnlyKVStore, key []byte) []byte {
	t.Helper()
	val, err := kv.Get(key)
	require.NoError(t, err)
	return val
}

func mustHas(t *testing.T, kv ReadOnlyKVStore, key []byte) bool {
	t.Helper()
	ok, err := kv.Has(key)
	require.NoError(t, err)
	return ok
}

// TestBTreeCacheGetSet does basic sanity checks on our cache
func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	// make sure the btree is empty at start but returns results
	// that are writen to it
	k, v := []byte("french"), []byte("fry")
	assert.Nil(t, mustGet(t, base, k))
	assert.False(t, mustHas(t, base, k))
	require.NoError(t, base.Set(k, v))
	assert.Equal(t, v, mustGet(t, base, k))
	assert.True(t, mustHas(t, base, k))

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assert.Equal(t, v, mustGet(t, cache, k))
	assert.True(t, mustHas(t, cache, k))

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	assert.Equal(t, v2, mustGet(t, cache, k2))
	assert.Nil(t, mustGet(t, base, k2))
	assert.False(t, mustHas(t, base, k2))

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assert.Equal(t, v, mustGet(t, base, k))
	assert.Equal(t, v2, mustGet(t, base, k2))

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set(k3, v3))
	assert.Equal(t, v3, mustGet(t, c2, k3))
	c2.Discard()
	assert.Nil(t, mustGet(t, base, k3))

	// and commit another
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k))
	assert.False(t, mustHas(t, c3, k))
	require.NoError(t, c3.Write())

	// make sure it commits proper
	assert.Nil(t, mustGet(t, base, k))
	assert.Equal(t, v2, mustGet(t, base, k2))
	assert.Nil(t, mustGet(t, base, k3))
}

func TestNestedCacheWrapDiscardKeepsOuterWrites(t *testing.T) {
	base := MemStore()
	outer := base.CacheWrap()
	require.NoError(t, outer.Set([]byte("flag"), []byte{1}))

	inner := outer.CacheWrap()
	require.NoError(t, inner.Set([]byte("effect"), []byte("paid")))
	assert.Equal(t, []byte{1}, mustGet(t, inner, []byte("flag")))
	inner.Discard()

	// a discarded wrap must not leak on a later write of the same wrap
	require.NoError(t, inner.Write())
	assert.Nil(t, mustGet(t, outer, []byte("effect")))

	require.NoError(t, outer.Write())
	assert.Equal(t, []byte{1}, mustGet(t, base, []byte("flag")))
	assert.Nil(t, mustGet(t, base, []byte("effect")))
}

func TestSetCopiesInput(t *testing.T) {
	db := MemStore()
	key, val := []byte("key"), []byte("value")
	require.NoError(t, db.Set(key, val))
	key[0], val[0] = 'X', 'X'
	assert.Equal(t, []byte("value"), mustGet(t, db, []byte("key")))
}

func TestLogableStore(t *testing.T) {
	db, log := LogableStore()
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	require.NoError(t, db.Delete([]byte("b")))

	ops := log.ShowOps()
	require.Len(t, ops, 2)
	assert.True(t, ops[0].IsSetOp())
	assert.Equal(t, []byte("a"), ops[0].Key())
	assert.Equal(t, []byte("1"), ops[0].Value())
	assert.False(t, ops[1].IsSetOp())
	assert.Equal(t, []byte("b"), ops[1].Key())
}

func TestNilKeyIsRejected(t *testing.T) {
	db := MemStore()
	assert.Error(t, db.Set(nil, []byte("x")))
	assert.Error(t, db.Delete(nil))
}
