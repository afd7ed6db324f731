package contract

import (
	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

// Owner returns the current administrator.
func (c *Contract) Owner() (sdk.Address, error) {
	var owner sdk.Address
	err := c.view(func(r state.Reader) error {
		var err error
		owner, err = loadOwner(r)
		return err
	})
	return owner, err
}

// TransferOwnership hands administrative control to newOwner. Only the
// current owner may call it.
func (c *Contract) TransferOwnership(caller, newOwner sdk.Address) error {
	return c.withAdmin("transfer_ownership", caller, func(tx *txn, _ *Configuration) error {
		if newOwner.IsZero() {
			return newError(CodeInvalidAddress, "new owner is the zero address")
		}
		saveOwner(tx.rw, newOwner)
		tx.emit(evOwnershipTransferred, map[string]string{
			"f": caller.String(),
			"t": newOwner.String(),
		})
		c.logger.Info("ownership transferred", "from", caller.String(), "to", newOwner.String())
		return nil
	})
}
