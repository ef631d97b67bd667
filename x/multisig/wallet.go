package multisig

import (
	"context"
	"sync"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
	"github.com/iov-one/quorum/x"
	"github.com/iov-one/quorum/x/cash"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/tendermint/tendermint/libs/log"
)

// Wallet is the only entry point to the state of a multisig wallet. All
// operations are serialized. A store can hold a single wallet.
type Wallet struct {
	mu sync.Mutex
	db quorum.CacheableKVStore

	name      string
	cond      quorum.Condition
	registry  *Registry
	ledger    *Ledger
	approvals *ApprovalTracker
	engine    *Engine

	effect   x.Effect
	auth     x.Authenticator
	bank     cash.Controller
	observer x.Observer
	logger   log.Logger
}

// Option configures a Wallet.
type Option func(*Wallet)

// WithEffect sets the effect of executed transactions. By default the value
// of a transaction is paid from the wallet holdings to the target.
func WithEffect(effect x.Effect) Option {
	return func(w *Wallet) { w.effect = effect }
}

// WithBank sets the controller of the wallet holdings.
func WithBank(bank cash.Controller) Option {
	return func(w *Wallet) { w.bank = bank }
}

// WithObserver sets the observer notified about committed operations. The
// observer is called while the wallet is locked and must not call the
// wallet.
func WithObserver(o x.Observer) Option {
	return func(w *Wallet) { w.observer = o }
}

// WithLogger sets the logger. Without it the logger of the context is used.
func WithLogger(logger log.Logger) Option {
	return func(w *Wallet) { w.logger = logger }
}

// WithAuth sets how the callers of unsigned operations are authenticated.
// It is meant for hosts that authenticate callers themselves. Without it
// unsigned operations have no caller and only the signed operations can be
// used.
func WithAuth(auth x.Authenticator) Option {
	return func(w *Wallet) { w.auth = auth }
}

// New creates a wallet in a store that does not hold one yet.
func New(db quorum.CacheableKVStore, cfg Config, opts ...Option) (*Wallet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch err := gconf.Load(db, configPkg, &Config{}); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "wallet already exists")
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	if err := gconf.Save(db, configPkg, &cfg); err != nil {
		return nil, errors.Wrap(err, "cannot save wallet configuration")
	}
	return newWallet(db, &cfg, opts)
}

// Load opens the wallet kept in given store.
func Load(db quorum.CacheableKVStore, opts ...Option) (*Wallet, error) {
	conf, err := loadConfig(db)
	if err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "stored configuration")
	}
	return newWallet(db, conf, opts)
}

func newWallet(db quorum.CacheableKVStore, conf *Config, opts []Option) (*Wallet, error) {
	registry, err := NewRegistry(conf.Owners, conf.Threshold)
	if err != nil {
		return nil, err
	}
	ledger := NewLedger()
	w := &Wallet{
		db:        db,
		name:      conf.Name,
		cond:      WalletCondition(conf.Name),
		registry:  registry,
		ledger:    ledger,
		approvals: NewApprovalTracker(registry, ledger),
		auth:      x.ChainAuth(),
		bank:      cash.NewController(cash.NewBucket()),
	}
	for _, fn := range opts {
		fn(w)
	}
	if w.effect == nil {
		w.effect = cash.NewTransferEffect(w.bank)
	}
	w.engine = NewEngine(w.registry, w.ledger, w.approvals, w.effect, w.cond)
	return w, nil
}

// Name returns the name the wallet was created with.
func (w *Wallet) Name() string {
	return w.name
}

// Address returns the address holding the funds of the wallet.
func (w *Wallet) Address() quorum.Address {
	return w.cond.Address()
}

// Owners returns the owners in the order the wallet was created with.
func (w *Wallet) Owners() []quorum.Address {
	return w.registry.Owners()
}

// IsOwner returns true if addr is an owner of the wallet.
func (w *Wallet) IsOwner(addr quorum.Address) bool {
	return w.registry.IsOwner(addr)
}

// Threshold returns the number of approvals a transaction needs.
func (w *Wallet) Threshold() uint32 {
	return w.registry.Threshold()
}

// Transaction returns the transaction with given id.
func (w *Wallet) Transaction(txID uint64) (*Transaction, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ledger.Get(w.db, txID)
}

// TransactionCount returns the number of submitted transactions.
func (w *Wallet) TransactionCount() (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ledger.Len(w.db)
}

// Approved returns true if owner currently approves the transaction. It is
// false for anything never approved, including unknown transactions.
func (w *Wallet) Approved(txID uint64, owner quorum.Address) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.approvals.IsApproved(w.db, txID, owner)
}

// ApprovalCount returns the number of owners approving the transaction.
func (w *Wallet) ApprovalCount(txID uint64) (uint32, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.ledger.Get(w.db, txID); err != nil {
		return 0, err
	}
	return w.approvals.Count(w.db, txID)
}

// Balance returns the holdings of the wallet.
func (w *Wallet) Balance() (quorum.Amount, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bank.Balance(w.db, w.Address())
}

// Deposit moves value from the caller to the wallet holdings. Any
// authenticated caller can deposit.
func (w *Wallet) Deposit(ctx context.Context, value quorum.Amount) error {
	return w.run(ctx, func(s *session) error {
		return s.deposit(ctx, value)
	})
}

// Submit proposes a transaction. Only owners can submit.
func (w *Wallet) Submit(ctx context.Context, to quorum.Address, value quorum.Amount, data []byte) (uint64, error) {
	var txID uint64
	err := w.run(ctx, func(s *session) error {
		var err error
		txID, err = s.Submit(ctx, to, value, data)
		return err
	})
	return txID, err
}

// Approve records the approval of the calling owner.
func (w *Wallet) Approve(ctx context.Context, txID uint64) error {
	return w.run(ctx, func(s *session) error {
		return s.Approve(ctx, txID)
	})
}

// Revoke withdraws the approval of the calling owner.
func (w *Wallet) Revoke(ctx context.Context, txID uint64) error {
	return w.run(ctx, func(s *session) error {
		return s.Revoke(ctx, txID)
	})
}

// Execute runs the transaction if it reached the threshold. The wallet stays
// locked while the effect runs. An effect must call back into the wallet
// only through the x.Reentrant handle it is given.
func (w *Wallet) Execute(ctx context.Context, txID uint64) error {
	return w.run(ctx, func(s *session) error {
		return s.Execute(ctx, txID)
	})
}

// DepositSigned is Deposit called by the signers of DepositCall(value).
func (w *Wallet) DepositSigned(ctx context.Context, value quorum.Amount, signatures []*sigs.StdSignature) error {
	return w.signed(ctx, DepositCall(value), signatures, func(ctx context.Context, s *session) error {
		return s.deposit(ctx, value)
	})
}

// SubmitSigned is Submit called by the signers of SubmitCall(to, value, data).
func (w *Wallet) SubmitSigned(ctx context.Context, to quorum.Address, value quorum.Amount, data []byte, signatures []*sigs.StdSignature) (uint64, error) {
	var txID uint64
	err := w.signed(ctx, SubmitCall(to, value, data), signatures, func(ctx context.Context, s *session) error {
		var err error
		txID, err = s.Submit(ctx, to, value, data)
		return err
	})
	return txID, err
}

// ApproveSigned is Approve called by the signers of ApproveCall(txID).
func (w *Wallet) ApproveSigned(ctx context.Context, txID uint64, signatures []*sigs.StdSignature) error {
	return w.signed(ctx, ApproveCall(txID), signatures, func(ctx context.Context, s *session) error {
		return s.Approve(ctx, txID)
	})
}

// RevokeSigned is Revoke called by the signers of RevokeCall(txID).
func (w *Wallet) RevokeSigned(ctx context.Context, txID uint64, signatures []*sigs.StdSignature) error {
	return w.signed(ctx, RevokeCall(txID), signatures, func(ctx context.Context, s *session) error {
		return s.Revoke(ctx, txID)
	})
}

// ExecuteSigned is Execute called by the signers of ExecuteCall(txID).
func (w *Wallet) ExecuteSigned(ctx context.Context, txID uint64, signatures []*sigs.StdSignature) error {
	return w.signed(ctx, ExecuteCall(txID), signatures, func(ctx context.Context, s *session) error {
		return s.Execute(ctx, txID)
	})
}

// signed runs op with the signers of call as callers. The signatures are
// checked and their sequences spent in the same atomic section as op, so
// each signature authorizes exactly one operation. The first signer is the
// caller.
func (w *Wallet) signed(
	ctx context.Context,
	call *Call,
	signatures []*sigs.StdSignature,
	op func(context.Context, *session) error,
) error {
	payload, err := call.SignBytes()
	if err != nil {
		return err
	}
	return w.run(ctx, func(s *session) error {
		return s.atomic(func(db quorum.CacheableKVStore) error {
			signers, err := sigs.VerifySignatures(db, payload, w.name, signatures)
			if err != nil {
				return err
			}
			inner := &session{wallet: w, db: db, auth: sigs.Authenticate{}, events: s.events}
			return op(sigs.WithSigners(ctx, signers), inner)
		})
	})
}

// run executes a top level operation. Events are delivered only when the
// operation succeeds.
func (w *Wallet) run(ctx context.Context, fn func(*session) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var events []x.Event
	s := &session{wallet: w, db: w.db, auth: w.auth, events: &events}
	if err := fn(s); err != nil {
		return err
	}
	if w.observer != nil {
		for _, e := range events {
			w.observer.OnEvent(e)
		}
	}
	return nil
}

func (w *Wallet) log(ctx context.Context) log.Logger {
	if w.logger != nil {
		return w.logger
	}
	return quorum.Logger(ctx)
}
