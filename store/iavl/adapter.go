/*
Package iavl provides a persistent store backed by an iavl merkle tree.

Writes go to the working tree and become durable only when Commit is called.
Reopening a store from the same directory and calling LoadLatestVersion
restores the last committed state.
*/
package iavl

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const (
	// DefaultCacheSize is the number of tree nodes kept in memory.
	DefaultCacheSize = 10000
	// DefaultHistorySize is the number of committed versions kept on
	// disk. Older versions are deleted on commit.
	DefaultHistorySize = 20
)

// CommitID identifies a committed version of the state.
type CommitID struct {
	Version int64
	Hash    []byte
}

// CommitStore manages a iavl committed state
type CommitStore struct {
	db         dbm.DB
	tree       *iavl.MutableTree
	numHistory int64
}

// NewCommitStore creates a new store with disk backing. An empty path keeps
// everything in memory.
func NewCommitStore(path, name string) (*CommitStore, error) {
	var db dbm.DB
	if path == "" {
		db = dbm.NewMemDB()
	} else {
		ldb, err := dbm.NewGoLevelDB(name, path)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrDatabase, "cannot open %q in %s: %s", name, path, err)
		}
		db = ldb
	}
	return &CommitStore{
		db:         db,
		tree:       iavl.NewMutableTree(db, DefaultCacheSize),
		numHistory: DefaultHistorySize,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "cannot load tree: %s", err)
	}
	return nil
}

// Commit saves the working tree as a new version and returns its id.
func (s *CommitStore) Commit() (CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return CommitID{}, errors.Wrapf(errors.ErrDatabase, "cannot save version: %s", err)
	}

	// Release an old version of history
	if s.numHistory > 0 && s.numHistory < version {
		if err := s.tree.DeleteVersion(version - s.numHistory); err != nil {
			return CommitID{}, errors.Wrapf(errors.ErrDatabase, "cannot delete version: %s", err)
		}
	}

	return CommitID{Version: version, Hash: hash}, nil
}

// LatestVersion returns info on the latest version saved to disk
func (s *CommitStore) LatestVersion() CommitID {
	return CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}

// Adapter returns a store working on the uncommitted tree.
func (s *CommitStore) Adapter() quorum.CacheableKVStore {
	return adapter{tree: s.tree}
}

// Close releases the database. The store must not be used afterwards.
func (s *CommitStore) Close() {
	s.db.Close()
}

// adapter converts the working iavl.MutableTree to a quorum.KVStore interface
type adapter struct {
	tree *iavl.MutableTree
}

var _ quorum.CacheableKVStore = adapter{}

// Get returns nil iff key doesn't exist.
func (a adapter) Get(key []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	_, val := a.tree.Get(key)
	return val, nil
}

// Has checks if a key exists.
func (a adapter) Has(key []byte) (bool, error) {
	if key == nil {
		return false, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	return a.tree.Has(key), nil
}

// Set adds a new value
func (a adapter) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	// iavl refuses to store nil
	if value == nil {
		value = []byte{}
	}
	a.tree.Set(key, value)
	return nil
}

// Delete removes from the tree
func (a adapter) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	a.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that can write multiple ops atomically
func (a adapter) NewBatch() quorum.Batch {
	return store.NewNonAtomicBatch(a)
}

// CacheWrap wraps us once again, with btree
func (a adapter) CacheWrap() quorum.KVCacheWrap {
	return store.NewBTreeCacheWrap(a, a.NewBatch(), nil)
}
