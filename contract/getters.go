package contract

import (
	"github.com/holiman/uint256"

	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

//
// ========================
// CONFIGURATION ACCESSORS
// ========================
//
// Read-only views over committed state. None of them stage writes or emit
// events, and none require the caller to be the owner.
//

// Config returns a copy of the current configuration.
func (c *Contract) Config() (*Configuration, error) {
	var cfg *Configuration
	err := c.view(func(r state.Reader) error {
		var err error
		cfg, err = loadConfig(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// configField reads one value out of the configuration.
func configField[T any](c *Contract, get func(cfg *Configuration) T) (T, error) {
	cfg, err := c.Config()
	if err != nil {
		var zero T
		return zero, err
	}
	return get(cfg), nil
}

func (c *Contract) Name() (string, error) {
	return configField(c, func(cfg *Configuration) string { return cfg.Name })
}

func (c *Contract) Symbol() (string, error) {
	return configField(c, func(cfg *Configuration) string { return cfg.Symbol })
}

func (c *Contract) BaseURI() (string, error) {
	return configField(c, func(cfg *Configuration) string { return cfg.BaseURI })
}

func (c *Contract) BaseExtension() (string, error) {
	return configField(c, func(cfg *Configuration) string { return cfg.BaseExtension })
}

func (c *Contract) NotRevealedURI() (string, error) {
	return configField(c, func(cfg *Configuration) string { return cfg.NotRevealedURI })
}

// ContractURI returns the collection-level metadata locator.
func (c *Contract) ContractURI() (string, error) {
	return configField(c, func(cfg *Configuration) string { return cfg.ContractURI })
}

func (c *Contract) Revealed() (bool, error) {
	return configField(c, func(cfg *Configuration) bool { return cfg.Revealed })
}

func (c *Contract) Paused() (bool, error) {
	return configField(c, func(cfg *Configuration) bool { return cfg.Paused })
}

func (c *Contract) MaxPerTransaction() (uint64, error) {
	return configField(c, func(cfg *Configuration) uint64 { return cfg.MaxPerTransaction })
}

// UnitPrice returns the per-item price for callers other than the owner.
func (c *Contract) UnitPrice() (*uint256.Int, error) {
	return configField(c, func(cfg *Configuration) *uint256.Int { return cfg.price().Clone() })
}

func (c *Contract) MaxSupply() (uint64, error) {
	return configField(c, func(cfg *Configuration) uint64 { return cfg.MaxSupply })
}

func (c *Contract) RoyaltyReceiver() (sdk.Address, error) {
	return configField(c, func(cfg *Configuration) sdk.Address { return cfg.RoyaltyReceiver })
}

func (c *Contract) RoyaltyBasisPoints() (uint64, error) {
	return configField(c, func(cfg *Configuration) uint64 { return cfg.RoyaltyBasisPoints })
}

//
// ==============
// SUPPLY VIEWS
// ==============
//

// IssuedCount returns how many items have been minted so far.
func (c *Contract) IssuedCount() (uint64, error) {
	var issued uint64
	err := c.view(func(r state.Reader) error {
		if _, err := loadConfig(r); err != nil {
			return err
		}
		var err error
		issued, err = loadIssuedCount(r)
		return err
	})
	return issued, err
}

// TotalSupply is the ERC721Enumerable name for IssuedCount; items are never
// burned, so the two always agree.
func (c *Contract) TotalSupply() (uint64, error) {
	var total uint64
	err := c.view(func(r state.Reader) error {
		var err error
		total, err = c.registry.TotalSupply(r)
		if err != nil {
			return storageError("load total supply", err)
		}
		return nil
	})
	return total, err
}

// BalanceOf returns how many items addr holds.
func (c *Contract) BalanceOf(addr sdk.Address) (uint64, error) {
	var n uint64
	err := c.view(func(r state.Reader) error {
		if addr.IsZero() {
			return newError(CodeInvalidAddress, "owner is the zero address")
		}
		var err error
		n, err = c.registry.BalanceOf(r, addr)
		if err != nil {
			return storageError("load balance", err)
		}
		return nil
	})
	return n, err
}

// Funds returns the native balance of addr; with the zero address it
// returns the contract's own balance.
func (c *Contract) Funds(addr sdk.Address) (*uint256.Int, error) {
	if addr.IsZero() {
		addr = c.address
	}
	var balance *uint256.Int
	err := c.view(func(r state.Reader) error {
		var err error
		balance, err = c.funds.Balance(r, addr)
		if err != nil {
			return storageError("load funds", err)
		}
		return nil
	})
	return balance, err
}
