package contract

import (
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

// MINT FUNCTIONS

// Issue mints amount sequential items to caller, who pays paid. The owner
// mints for free; everyone else must pay at least UnitPrice*amount. The full
// payment is kept, there is no refund of any excess.
func (c *Contract) Issue(caller sdk.Address, amount uint64, paid *uint256.Int) ([]uint64, error) {
	if paid == nil {
		paid = new(uint256.Int)
	}
	var ids []uint64
	err := c.exec("issue", caller, func(tx *txn) error {
		if amount == 0 {
			return ErrInvalidAmount
		}
		if caller.IsZero() {
			return newError(CodeInvalidAddress, "cannot mint to the zero address")
		}
		cfg, err := loadConfig(tx.rw)
		if err != nil {
			return err
		}
		if cfg.Paused {
			return ErrContractPaused
		}
		if amount > cfg.MaxPerTransaction {
			return newError(CodeAmountExceedsLimit, "requested %d, limit %d", amount, cfg.MaxPerTransaction)
		}
		issued, err := loadIssuedCount(tx.rw)
		if err != nil {
			return err
		}
		if remaining := remainingCapacity(cfg, issued); amount > remaining {
			return newError(CodeSupplyExceeded, "requested %d, remaining %d of %d", amount, remaining, cfg.MaxSupply)
		}

		owner, err := loadOwner(tx.rw)
		if err != nil {
			return err
		}
		if !isAdministrator(caller, owner) {
			if err := checkPayment(cfg, amount, paid); err != nil {
				return err
			}
		}
		if !paid.IsZero() {
			if err := c.funds.Send(tx.rw, caller, c.address, paid); err != nil {
				return wrapError(CodeTransferFailed, "collect payment", err)
			}
		}

		ids, err = reserve(tx.rw, cfg, amount)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := c.registry.Mint(tx.rw, caller, id); err != nil {
				return storageError("mint "+strconv.FormatUint(id, 10), err)
			}
			tx.emit(evMint, map[string]string{
				"id": strconv.FormatUint(id, 10),
				"t":  caller.String(),
			})
		}
		c.logger.Info("items issued",
			"caller", caller.String(),
			"amount", amount,
			"ids", formatIDs(ids),
			"paid", paid.Dec(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// checkPayment fails unless paid covers price*amount. A product too large
// for 256 bits cannot be paid.
func checkPayment(cfg *Configuration, amount uint64, paid *uint256.Int) error {
	required, overflow := new(uint256.Int).MulOverflow(cfg.price(), uint256.NewInt(amount))
	if overflow {
		return newError(CodeInsufficientPayment, "price of %d items exceeds 256 bits", amount)
	}
	if paid.Lt(required) {
		return newError(CodeInsufficientPayment, "paid %s, required %s", paid.Dec(), required.Dec())
	}
	return nil
}

// GET FUNCTIONS

// WalletOfOwner lists the items held by owner in the order they were
// received.
func (c *Contract) WalletOfOwner(owner sdk.Address) ([]uint64, error) {
	var ids []uint64
	err := c.view(func(r state.Reader) error {
		if owner.IsZero() {
			return newError(CodeInvalidAddress, "owner is the zero address")
		}
		balance, err := c.registry.BalanceOf(r, owner)
		if err != nil {
			return storageError("load balance", err)
		}
		ids = make([]uint64, 0, balance)
		for i := uint64(0); i < balance; i++ {
			id, err := c.registry.TokenOfOwnerByIndex(r, owner, i)
			if err != nil {
				return storageError("load owned item", err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// OwnerOf returns the holder of item id.
func (c *Contract) OwnerOf(id uint64) (sdk.Address, error) {
	var owner sdk.Address
	err := c.view(func(r state.Reader) error {
		exists, err := c.registry.Exists(r, id)
		if err != nil {
			return storageError("load item", err)
		}
		if !exists {
			return newError(CodeUnknownItem, "item %d was never issued", id)
		}
		owner, err = c.registry.OwnerOf(r, id)
		if err != nil {
			return storageError("load item owner", err)
		}
		return nil
	})
	return owner, err
}

func formatIDs(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}
