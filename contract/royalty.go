package contract

import (
	"github.com/holiman/uint256"

	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

// RoyaltyInfo implements EIP-2981: the royalty owed on a sale at salePrice
// is floor(salePrice * RoyaltyBasisPoints / 10000), payable to
// RoyaltyReceiver. One flat rate covers the collection, so tokenID is not
// consulted.
//
// RoyaltyBasisPoints is not capped; above 10000 the royalty exceeds the
// sale price.
func (c *Contract) RoyaltyInfo(tokenID uint64, salePrice *uint256.Int) (sdk.Address, *uint256.Int, error) {
	var receiver sdk.Address
	var royalty *uint256.Int
	err := c.view(func(r state.Reader) error {
		cfg, err := loadConfig(r)
		if err != nil {
			return err
		}
		receiver = cfg.RoyaltyReceiver
		royalty, err = royaltyOf(salePrice, cfg.RoyaltyBasisPoints)
		return err
	})
	if err != nil {
		return sdk.ZeroAddress, nil, err
	}
	return receiver, royalty, nil
}

func royaltyOf(salePrice *uint256.Int, basisPoints uint64) (*uint256.Int, error) {
	if salePrice == nil {
		salePrice = new(uint256.Int)
	}
	product, overflow := new(uint256.Int).MulOverflow(salePrice, uint256.NewInt(basisPoints))
	if overflow {
		return nil, newError(CodeRoyaltyOverflow, "%s * %d overflows 256 bits", salePrice.Dec(), basisPoints)
	}
	return product.Div(product, uint256.NewInt(royaltyDenominator)), nil
}
