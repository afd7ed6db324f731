package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vsc_nft_drop/contract"
	"vsc_nft_drop/sdk"
)

const sampleDeploy = `
name: Cool Cats
symbol: COOL
base_uri: ipfs://QmBase/
not_revealed_uri: ipfs://QmHidden/hidden.json
contract_uri: ipfs://QmContract/contract.json
unit_price: "115792089237316195423570985008687907853269984665640564039457584007913129639935"
max_supply: 10000
royalty:
  receiver: hive:artist
  basis_points: 500
`

func TestParseDeploy(t *testing.T) {
	args, err := ParseDeploy([]byte(sampleDeploy))
	require.NoError(t, err)

	assert.Equal(t, "Cool Cats", args.Name)
	assert.Equal(t, "COOL", args.Symbol)
	assert.Equal(t, ".json", args.BaseExtension)
	assert.Equal(t, uint64(10000), args.MaxSupply)
	assert.Equal(t, sdk.Address("hive:artist"), args.RoyaltyReceiver)
	assert.Equal(t, uint64(500), args.RoyaltyBasisPoints)
	assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639935",
		args.UnitPrice.Dec())
}

func TestParseDeployExplicitEmptyExtension(t *testing.T) {
	args, err := ParseDeploy([]byte("name: A\nsymbol: B\nbase_extension: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "", args.BaseExtension)
	assert.True(t, args.UnitPrice.IsZero())
}

func TestParseDeployErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":   "name: A\nsymbol: B\nprice: 1\n",
		"bad price":     "name: A\nsymbol: B\nunit_price: ten\n",
		"price too big": "name: A\nsymbol: B\nunit_price: \"115792089237316195423570985008687907853269984665640564039457584007913129639936\"\n",
		"not yaml":      "name: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDeploy([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := ParseDeploy([]byte("symbol: B\n"))
	assert.Equal(t, contract.CodeInvalidArgument, contract.CodeOf(err))
}

func TestLoadDeployFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDeploy), 0o600))

	args, err := LoadDeployFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Cool Cats", args.Name)

	_, err = LoadDeployFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
