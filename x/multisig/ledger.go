package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// Ledger is the append only list of transactions. Transaction ids are dense
// and start at zero.
type Ledger struct {
	bucket orm.ModelBucket
	seq    orm.Sequence
}

// NewLedger returns a ledger using the default bucket.
func NewLedger() *Ledger {
	return &Ledger{
		bucket: orm.NewModelBucket(TransactionBucketName),
		seq:    orm.NewSequence(TransactionBucketName, SequenceName),
	}
}

// Submit appends a new, not executed transaction and returns its id.
func (l *Ledger) Submit(db quorum.KVStore, target quorum.Address, value quorum.Amount, payload []byte) (uint64, error) {
	tx := Transaction{
		Target:  target,
		Value:   value,
		Payload: payload,
	}
	if err := tx.Validate(); err != nil {
		return 0, errors.Wrap(err, "invalid transaction")
	}
	id, err := l.seq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "cannot acquire ID")
	}
	if err := l.bucket.Put(db, orm.EncodeSequence(id), &tx); err != nil {
		return 0, errors.Wrapf(err, "cannot save transaction %d", id)
	}
	return id, nil
}

// Get returns the transaction with given id or ErrTransactionNotFound.
func (l *Ledger) Get(db quorum.ReadOnlyKVStore, txID uint64) (*Transaction, error) {
	n, err := l.Len(db)
	if err != nil {
		return nil, err
	}
	if txID >= n {
		return nil, errors.Wrapf(ErrTransactionNotFound, "transaction %d, ledger length %d", txID, n)
	}
	var tx Transaction
	switch err := l.bucket.One(db, orm.EncodeSequence(txID), &tx); {
	case err == nil:
		return &tx, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrTransactionNotFound, "transaction %d", txID)
	default:
		return nil, err
	}
}

// Len returns the number of submitted transactions.
func (l *Ledger) Len(db quorum.ReadOnlyKVStore) (uint64, error) {
	n, err := l.seq.Count(db)
	if err != nil {
		return 0, errors.Wrap(err, "cannot read ledger length")
	}
	return n, nil
}

// markExecuted is the only mutation of a stored transaction.
func (l *Ledger) markExecuted(db quorum.KVStore, txID uint64, executed bool) error {
	tx, err := l.Get(db, txID)
	if err != nil {
		return err
	}
	tx.Executed = executed
	return l.bucket.Put(db, orm.EncodeSequence(txID), tx)
}
