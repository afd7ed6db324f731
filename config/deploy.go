package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/holiman/uint256"
	"gopkg.in/yaml.v3"

	"vsc_nft_drop/contract"
	"vsc_nft_drop/sdk"
)

// DefaultBaseExtension is used when a deploy file names no extension.
const DefaultBaseExtension = ".json"

// DeployFile is the YAML form of the constructor parameters.
//
//	name: Cool Cats
//	symbol: COOL
//	base_uri: ipfs://QmBase/
//	not_revealed_uri: ipfs://QmHidden/hidden.json
//	contract_uri: ipfs://QmContract/contract.json
//	unit_price: "1000"
//	max_supply: 10000
//	royalty:
//	  receiver: hive:artist
//	  basis_points: 500
type DeployFile struct {
	Name           string        `yaml:"name"`
	Symbol         string        `yaml:"symbol"`
	BaseURI        string        `yaml:"base_uri"`
	BaseExtension  *string       `yaml:"base_extension"`
	NotRevealedURI string        `yaml:"not_revealed_uri"`
	ContractURI    string        `yaml:"contract_uri"`
	UnitPrice      string        `yaml:"unit_price"`
	MaxSupply      uint64        `yaml:"max_supply"`
	Royalty        RoyaltyConfig `yaml:"royalty"`
}

// RoyaltyConfig is the royalty block of a deploy file.
type RoyaltyConfig struct {
	Receiver    string `yaml:"receiver"`
	BasisPoints uint64 `yaml:"basis_points"`
}

// LoadDeployFile reads and converts the deploy file at path.
func LoadDeployFile(path string) (contract.DeployArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return contract.DeployArgs{}, fmt.Errorf("reading deploy file: %w", err)
	}
	args, err := ParseDeploy(data)
	if err != nil {
		return contract.DeployArgs{}, fmt.Errorf("%s: %w", path, err)
	}
	return args, nil
}

// ParseDeploy converts YAML deploy parameters. Unknown keys are rejected.
func ParseDeploy(data []byte) (contract.DeployArgs, error) {
	var f DeployFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return contract.DeployArgs{}, fmt.Errorf("parsing deploy file: %w", err)
	}
	return f.Args()
}

// Args converts the file into constructor parameters.
func (f *DeployFile) Args() (contract.DeployArgs, error) {
	price := new(uint256.Int)
	if s := strings.TrimSpace(f.UnitPrice); s != "" {
		var err error
		price, err = uint256.FromDecimal(s)
		if err != nil {
			return contract.DeployArgs{}, fmt.Errorf("unit_price %q: %w", f.UnitPrice, err)
		}
	}
	ext := DefaultBaseExtension
	if f.BaseExtension != nil {
		ext = *f.BaseExtension
	}
	args := contract.DeployArgs{
		Name:               f.Name,
		Symbol:             f.Symbol,
		BaseURI:            f.BaseURI,
		BaseExtension:      ext,
		NotRevealedURI:     f.NotRevealedURI,
		ContractURI:        f.ContractURI,
		UnitPrice:          price,
		MaxSupply:          f.MaxSupply,
		RoyaltyReceiver:    sdk.Address(strings.TrimSpace(f.Royalty.Receiver)),
		RoyaltyBasisPoints: f.Royalty.BasisPoints,
	}
	if err := args.Validate(); err != nil {
		return contract.DeployArgs{}, err
	}
	return args, nil
}
