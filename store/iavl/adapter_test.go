package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/quorum/quorumtest/assert"
)

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "iavl")
	if err != nil {
		t.Fatalf("cannot create temp dir: %s", err)
	}
	return dir
}

func TestAdapterCacheWrap(t *testing.T) {
	s, err := NewCommitStore("", "mem")
	assert.Nil(t, err)
	defer s.Close()
	db := s.Adapter()

	assert.Nil(t, db.Set([]byte("a"), []byte("one")))

	cache := db.CacheWrap()
	assert.Nil(t, cache.Set([]byte("b"), []byte("two")))
	assert.Nil(t, cache.Delete([]byte("a")))

	// nothing reaches the tree before Write
	got, err := db.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("one"), got)
	ok, err := db.Has([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	assert.Nil(t, cache.Write())

	got, err = db.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Nil(t, got)
	got, err = db.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("two"), got)

	discarded := db.CacheWrap()
	assert.Nil(t, discarded.Set([]byte("c"), []byte("three")))
	discarded.Discard()
	ok, err = db.Has([]byte("c"))
	assert.Nil(t, err)
	assert.Equal(t, false, ok)
}

func TestNilKey(t *testing.T) {
	s, err := NewCommitStore("", "mem")
	assert.Nil(t, err)
	defer s.Close()
	db := s.Adapter()

	if err := db.Set(nil, []byte("x")); err == nil {
		t.Fatal("nil key accepted")
	}
	if _, err := db.Get(nil); err == nil {
		t.Fatal("nil key accepted")
	}
}

func TestCommitAndReload(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	s, err := NewCommitStore(dir, "state")
	assert.Nil(t, err)
	assert.Nil(t, s.LoadLatestVersion())
	assert.Equal(t, int64(0), s.LatestVersion().Version)

	db := s.Adapter()
	assert.Nil(t, db.Set([]byte("kept"), []byte("yes")))
	id, err := s.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)
	if len(id.Hash) == 0 {
		t.Fatal("empty commit hash")
	}
	assert.Equal(t, id, s.LatestVersion())

	// never committed, so lost on reload
	assert.Nil(t, db.Set([]byte("lost"), []byte("yes")))
	s.Close()

	s, err = NewCommitStore(dir, "state")
	assert.Nil(t, err)
	defer s.Close()
	assert.Nil(t, s.LoadLatestVersion())
	assert.Equal(t, id, s.LatestVersion())

	db = s.Adapter()
	got, err := db.Get([]byte("kept"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("yes"), got)
	ok, err := db.Has([]byte("lost"))
	assert.Nil(t, err)
	assert.Equal(t, false, ok)
}

func TestHistoryIsPruned(t *testing.T) {
	s, err := NewCommitStore("", "mem")
	assert.Nil(t, err)
	defer s.Close()
	s.numHistory = 2
	db := s.Adapter()

	for i := 0; i < 5; i++ {
		assert.Nil(t, db.Set([]byte("counter"), []byte{byte(i)}))
		_, err := s.Commit()
		assert.Nil(t, err)
	}
	assert.Equal(t, false, s.tree.VersionExists(2))
	assert.Equal(t, true, s.tree.VersionExists(4))
	assert.Equal(t, true, s.tree.VersionExists(5))
}
