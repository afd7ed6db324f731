// Package contract implements a capped-supply NFT drop: paid sequential
// minting, a pause switch, two-phase metadata reveal, EIP-2981 royalties
// and owner-only administration.
//
// A Contract is bound to a state.Store. Every operation takes the caller
// explicitly, runs under one mutex, and stages its writes; the writes reach
// the store only when the operation succeeds.
package contract

import (
	"log/slog"
	"sync"

	"github.com/holiman/uint256"

	"vsc_nft_drop/bank"
	"vsc_nft_drop/registry"
	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

// Funds is the value-transfer primitive the contract is paid through and
// withdraws with. bank.Ledger satisfies it.
type Funds interface {
	Balance(r state.Reader, addr sdk.Address) (*uint256.Int, error)
	Send(rw state.ReadWriter, from, to sdk.Address, amount *uint256.Int) error
}

// Options wires the contract to its host. Zero values pick defaults.
type Options struct {
	// Address is the account that receives mint payments.
	Address sdk.Address
	Funds   Funds
	Logger  *slog.Logger
	// OnEvent receives every event after its operation committed. It runs
	// while the contract lock is held and must not call back into it.
	OnEvent func(Event)
}

// Contract is a deployed drop.
type Contract struct {
	mu       sync.Mutex
	store    state.Store
	registry registry.Registry
	funds    Funds
	address  sdk.Address
	logger   *slog.Logger
	onEvent  func(Event)
}

func newContract(store state.Store, opts Options) *Contract {
	c := &Contract{
		store:   store,
		funds:   opts.Funds,
		address: opts.Address,
		logger:  opts.Logger,
		onEvent: opts.OnEvent,
	}
	if c.funds == nil {
		c.funds = bank.Ledger{}
	}
	if c.address.IsZero() {
		c.address = DefaultAddress
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("module", "nft_drop", "contract", c.address.String())
	if c.onEvent == nil {
		c.onEvent = c.logEvent
	}
	return c
}

// Deploy initialises a new drop in store, owned by deployer. Minting
// starts paused and unrevealed with a per-transaction limit of 10.
func Deploy(store state.Store, deployer sdk.Address, args DeployArgs, opts Options) (*Contract, error) {
	if deployer.IsZero() {
		return nil, newError(CodeInvalidAddress, "deployer address is empty")
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}
	c := newContract(store, opts)
	err := c.exec("deploy", deployer, func(tx *txn) error {
		existing, err := tx.rw.Get(configKey)
		if err != nil {
			return storageError("load configuration", err)
		}
		if existing != nil {
			return ErrAlreadyDeployed
		}
		cfg := args.configuration()
		if err := saveConfig(tx.rw, cfg); err != nil {
			return err
		}
		saveIssuedCount(tx.rw, 0)
		saveOwner(tx.rw, deployer)
		tx.emit(evOwnershipTransferred, map[string]string{
			"f": sdk.ZeroAddress.String(),
			"t": deployer.String(),
		})
		c.logger.Info("contract deployed",
			"name", cfg.Name,
			"symbol", cfg.Symbol,
			"max_supply", cfg.MaxSupply,
			"owner", deployer.String(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Open binds to a drop previously deployed in store.
func Open(store state.Store, opts Options) (*Contract, error) {
	if _, err := loadConfig(store); err != nil {
		return nil, err
	}
	return newContract(store, opts), nil
}

// Address returns the account holding mint proceeds.
func (c *Contract) Address() sdk.Address {
	return c.address
}

// txn is the working set of one operation.
type txn struct {
	id     string
	caller sdk.Address
	rw     *state.Staging
	events []Event
}

func (tx *txn) emit(eventType string, attributes map[string]string) {
	attributes["tx"] = tx.id
	tx.events = append(tx.events, Event{Type: eventType, Attributes: attributes})
}

// exec runs fn against a fresh staging area and commits it only when fn
// succeeds. Events are delivered after the commit.
func (c *Contract) exec(op string, caller sdk.Address, fn func(tx *txn) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx := &txn{
		id:     sdk.NewTxID(),
		caller: caller,
		rw:     state.NewStaging(c.store),
	}
	if err := fn(tx); err != nil {
		c.logger.Debug("operation rejected",
			"op", op,
			"caller", caller.String(),
			"code", string(CodeOf(err)),
			"error", err,
		)
		return err
	}
	if err := tx.rw.CommitTo(c.store); err != nil {
		c.logger.Error("commit failed", "op", op, "error", err)
		return storageError("commit "+op, err)
	}
	for _, ev := range tx.events {
		c.onEvent(ev)
	}
	return nil
}

// view runs a read-only fn against committed state.
func (c *Contract) view(fn func(r state.Reader) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(c.store)
}

// withAdmin wraps fn with the access guard: it loads the current owner and
// rejects any other caller before fn runs.
func (c *Contract) withAdmin(op string, caller sdk.Address, fn func(tx *txn, cfg *Configuration) error) error {
	return c.exec(op, caller, func(tx *txn) error {
		owner, err := loadOwner(tx.rw)
		if err != nil {
			return err
		}
		if !isAdministrator(caller, owner) {
			return ErrUnauthorized
		}
		cfg, err := loadConfig(tx.rw)
		if err != nil {
			return err
		}
		return fn(tx, cfg)
	})
}
