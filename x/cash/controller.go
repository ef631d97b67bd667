package cash

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Balancer is an interface to query the amount of coins held by an address.
type Balancer interface {
	Balance(quorum.ReadOnlyKVStore, quorum.Address) (quorum.Amount, error)
}

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to the
	// destination account. This operation is atomic.
	MoveCoins(db quorum.KVStore, src, dest quorum.Address, amount quorum.Amount) error
}

// Controller is the functionality needed by the wallet to keep and spend
// its holdings.
type Controller interface {
	Balancer
	CoinMover

	// IssueCoins creates given amount of coins and assigns them to the
	// destination account.
	IssueCoins(db quorum.KVStore, dest quorum.Address, amount quorum.Amount) error
}

// BaseController is a simple implementation of controller. Wallet
// representation is stored in a bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount held by given address. Unknown addresses hold
// nothing.
func (c BaseController) Balance(db quorum.ReadOnlyKVStore, addr quorum.Address) (quorum.Amount, error) {
	s, err := c.bucket.Get(db, addr)
	if err != nil {
		return 0, errors.Wrap(err, "cannot get account state")
	}
	if s == nil {
		return 0, nil
	}
	return s.Balance(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db quorum.KVStore, src, dest quorum.Address, amount quorum.Amount) error {
	if amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "zero amount")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return errors.Wrap(err, "cannot get sender state")
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if err := sender.Subtract(amount); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := c.bucket.Save(db, src, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}

	// Reading the recipient after the sender was saved makes transfers
	// to self a noop instead of minting coins.
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return errors.Wrap(err, "cannot get recipient state")
	}
	if err := recipient.Add(amount); err != nil {
		return errors.Wrap(err, "recipient")
	}
	return c.bucket.Save(db, dest, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db quorum.KVStore, dest quorum.Address, amount quorum.Amount) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}
