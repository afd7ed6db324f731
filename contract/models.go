package contract

import (
	"strings"

	"github.com/holiman/uint256"

	"vsc_nft_drop/sdk"
)

// Configuration is the owner-mutable settings block of the drop. Name,
// Symbol and MaxSupply never change after deployment.
type Configuration struct {
	Name               string       `json:"name"`
	Symbol             string       `json:"symbol"`
	BaseURI            string       `json:"baseURI"`
	BaseExtension      string       `json:"baseExtension"`
	NotRevealedURI     string       `json:"notRevealedURI"`
	ContractURI        string       `json:"contractURI"`
	Revealed           bool         `json:"revealed"`
	Paused             bool         `json:"paused"`
	MaxPerTransaction  uint64       `json:"maxPerTransaction"`
	UnitPrice          *uint256.Int `json:"unitPrice"`
	MaxSupply          uint64       `json:"maxSupply"`
	RoyaltyReceiver    sdk.Address  `json:"royaltyReceiver"`
	RoyaltyBasisPoints uint64       `json:"royaltyBasisPoints"`
}

// Clone returns a deep copy.
func (c *Configuration) Clone() *Configuration {
	out := *c
	if c.UnitPrice != nil {
		out.UnitPrice = c.UnitPrice.Clone()
	}
	return &out
}

// price returns UnitPrice, treating a missing price as free.
func (c *Configuration) price() *uint256.Int {
	if c.UnitPrice == nil {
		return new(uint256.Int)
	}
	return c.UnitPrice
}

// DeployArgs are the constructor parameters supplied by the deployer.
type DeployArgs struct {
	Name               string       `json:"name"`
	Symbol             string       `json:"symbol"`
	BaseURI            string       `json:"baseURI"`
	BaseExtension      string       `json:"baseExtension"`
	NotRevealedURI     string       `json:"notRevealedURI"`
	ContractURI        string       `json:"contractURI"`
	UnitPrice          *uint256.Int `json:"unitPrice"`
	MaxSupply          uint64       `json:"maxSupply"`
	RoyaltyReceiver    sdk.Address  `json:"royaltyReceiver"`
	RoyaltyBasisPoints uint64       `json:"royaltyBasisPoints"`
}

// Validate checks the fields a drop cannot live without.
func (a *DeployArgs) Validate() error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return newError(CodeInvalidArgument, "name is mandatory")
	}
	if len(name) > maxNameLength {
		return newError(CodeInvalidArgument, "name: max %d chars", maxNameLength)
	}
	symbol := strings.TrimSpace(a.Symbol)
	if symbol == "" {
		return newError(CodeInvalidArgument, "symbol is mandatory")
	}
	if len(symbol) > maxSymbolLength {
		return newError(CodeInvalidArgument, "symbol: max %d chars", maxSymbolLength)
	}
	return nil
}

func (a *DeployArgs) configuration() *Configuration {
	price := new(uint256.Int)
	if a.UnitPrice != nil {
		price = a.UnitPrice.Clone()
	}
	return &Configuration{
		Name:               strings.TrimSpace(a.Name),
		Symbol:             strings.TrimSpace(a.Symbol),
		BaseURI:            a.BaseURI,
		BaseExtension:      a.BaseExtension,
		NotRevealedURI:     a.NotRevealedURI,
		ContractURI:        a.ContractURI,
		Revealed:           false,
		Paused:             true,
		MaxPerTransaction:  defaultMaxPerTransaction,
		UnitPrice:          price,
		MaxSupply:          a.MaxSupply,
		RoyaltyReceiver:    a.RoyaltyReceiver,
		RoyaltyBasisPoints: a.RoyaltyBasisPoints,
	}
}
