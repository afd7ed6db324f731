package contract

import (
	"strconv"

	"github.com/holiman/uint256"

	"vsc_nft_drop/sdk"
)

// Owner-only setters. Each assigns exactly one configuration field. String
// inputs are stored as given; a base URI without its trailing separator is
// the caller's problem.

// SetUnitPrice sets the per-item mint price.
func (c *Contract) SetUnitPrice(caller sdk.Address, price *uint256.Int) error {
	if price == nil {
		price = new(uint256.Int)
	}
	p := price.Clone()
	return c.setField(caller, "unitPrice", p.Dec(), func(cfg *Configuration) { cfg.UnitPrice = p })
}

// SetBaseURI sets the prefix of revealed item locators.
func (c *Contract) SetBaseURI(caller sdk.Address, uri string) error {
	return c.setField(caller, "baseURI", uri, func(cfg *Configuration) { cfg.BaseURI = uri })
}

// SetNotRevealedURI sets the shared locator returned before the reveal.
func (c *Contract) SetNotRevealedURI(caller sdk.Address, uri string) error {
	return c.setField(caller, "notRevealedURI", uri, func(cfg *Configuration) { cfg.NotRevealedURI = uri })
}

// SetContractURI sets the collection-level metadata locator.
func (c *Contract) SetContractURI(caller sdk.Address, uri string) error {
	return c.setField(caller, "contractURI", uri, func(cfg *Configuration) { cfg.ContractURI = uri })
}

// SetMaxPerTransaction sets how many items one Issue call may mint.
func (c *Contract) SetMaxPerTransaction(caller sdk.Address, limit uint64) error {
	return c.setField(caller, "maxPerTransaction", strconv.FormatUint(limit, 10),
		func(cfg *Configuration) { cfg.MaxPerTransaction = limit })
}

// SetBaseExtension sets the suffix of revealed item locators.
func (c *Contract) SetBaseExtension(caller sdk.Address, ext string) error {
	return c.setField(caller, "baseExtension", ext, func(cfg *Configuration) { cfg.BaseExtension = ext })
}

// SetRoyaltyReceiver sets the EIP-2981 royalty recipient.
func (c *Contract) SetRoyaltyReceiver(caller sdk.Address, receiver sdk.Address) error {
	return c.setField(caller, "royaltyReceiver", receiver.String(),
		func(cfg *Configuration) { cfg.RoyaltyReceiver = receiver })
}

// SetRoyaltyBasisPoints sets the royalty rate. Values above 10000 are
// accepted.
// TODO: reject basis points above 10000 once no deployment relies on it.
func (c *Contract) SetRoyaltyBasisPoints(caller sdk.Address, basisPoints uint64) error {
	if basisPoints > royaltyDenominator {
		c.logger.Warn("royalty rate above 100%", "basis_points", basisPoints)
	}
	return c.setField(caller, "royaltyBasisPoints", strconv.FormatUint(basisPoints, 10),
		func(cfg *Configuration) { cfg.RoyaltyBasisPoints = basisPoints })
}

// TogglePaused flips the pause switch and returns the new value.
func (c *Contract) TogglePaused(caller sdk.Address) (bool, error) {
	var paused bool
	err := c.withAdmin("toggle_paused", caller, func(tx *txn, cfg *Configuration) error {
		cfg.Paused = !cfg.Paused
		paused = cfg.Paused
		if err := saveConfig(tx.rw, cfg); err != nil {
			return err
		}
		tx.emit(evPause, map[string]string{"v": strconv.FormatBool(paused)})
		c.logger.Info("pause toggled", "paused", paused)
		return nil
	})
	return paused, err
}

// ToggleRevealed flips the reveal switch and returns the new value.
func (c *Contract) ToggleRevealed(caller sdk.Address) (bool, error) {
	var revealed bool
	err := c.withAdmin("toggle_revealed", caller, func(tx *txn, cfg *Configuration) error {
		cfg.Revealed = !cfg.Revealed
		revealed = cfg.Revealed
		if err := saveConfig(tx.rw, cfg); err != nil {
			return err
		}
		tx.emit(evReveal, map[string]string{"v": strconv.FormatBool(revealed)})
		c.logger.Info("reveal toggled", "revealed", revealed)
		return nil
	})
	return revealed, err
}

// Withdraw sends the contract's whole balance to the owner and returns the
// amount sent.
func (c *Contract) Withdraw(caller sdk.Address) (*uint256.Int, error) {
	var amount *uint256.Int
	err := c.withAdmin("withdraw", caller, func(tx *txn, _ *Configuration) error {
		balance, err := c.funds.Balance(tx.rw, c.address)
		if err != nil {
			return storageError("load contract balance", err)
		}
		if err := c.funds.Send(tx.rw, c.address, caller, balance); err != nil {
			return wrapError(CodeTransferFailed, "withdraw "+balance.Dec(), err)
		}
		amount = balance
		tx.emit(evWithdraw, map[string]string{
			"t": caller.String(),
			"a": balance.Dec(),
		})
		c.logger.Info("balance withdrawn", "to", caller.String(), "amount", balance.Dec())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return amount, nil
}

func (c *Contract) setField(caller sdk.Address, field, value string, apply func(cfg *Configuration)) error {
	return c.withAdmin("set_"+field, caller, func(tx *txn, cfg *Configuration) error {
		apply(cfg)
		if err := saveConfig(tx.rw, cfg); err != nil {
			return err
		}
		tx.emit(evConfig, map[string]string{"f": field, "v": value})
		c.logger.Info("configuration updated", "field", field, "value", value)
		return nil
	})
}
