package contract_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vsc_nft_drop/contract"
)

func TestAdminOperationsRejectOtherCallers(t *testing.T) {
	calls := map[string]func(ct *ContractTest) error{
		"set unit price": func(ct *ContractTest) error {
			return ct.SetUnitPrice(buyerAddress, uint256.NewInt(1))
		},
		"set base uri": func(ct *ContractTest) error {
			return ct.SetBaseURI(buyerAddress, "ipfs://evil/")
		},
		"set not revealed uri": func(ct *ContractTest) error {
			return ct.SetNotRevealedURI(buyerAddress, "ipfs://evil.json")
		},
		"set contract uri": func(ct *ContractTest) error {
			return ct.SetContractURI(buyerAddress, "ipfs://evil.json")
		},
		"set max per transaction": func(ct *ContractTest) error {
			return ct.SetMaxPerTransaction(buyerAddress, 100)
		},
		"set base extension": func(ct *ContractTest) error {
			return ct.SetBaseExtension(buyerAddress, ".txt")
		},
		"set royalty receiver": func(ct *ContractTest) error {
			return ct.SetRoyaltyReceiver(buyerAddress, buyerAddress)
		},
		"set royalty basis points": func(ct *ContractTest) error {
			return ct.SetRoyaltyBasisPoints(buyerAddress, 10_000)
		},
		"toggle paused": func(ct *ContractTest) error {
			_, err := ct.TogglePaused(buyerAddress)
			return err
		},
		"toggle revealed": func(ct *ContractTest) error {
			_, err := ct.ToggleRevealed(buyerAddress)
			return err
		},
		"withdraw": func(ct *ContractTest) error {
			_, err := ct.Withdraw(buyerAddress)
			return err
		},
		"transfer ownership": func(ct *ContractTest) error {
			return ct.TransferOwnership(buyerAddress, buyerAddress)
		},
		"empty caller": func(ct *ContractTest) error {
			_, err := ct.TogglePaused("")
			return err
		},
	}
	var tests []ContractTestCase
	for name, call := range calls {
		tests = append(tests, ContractTestCase{Name: name, Call: call, ExpectCode: contract.CodeUnauthorized})
	}
	RunContractTests(t, func(t *testing.T) *ContractTest {
		ct := SetupContractTest(t)
		before, err := ct.Snapshot()
		require.NoError(t, err)
		t.Cleanup(func() {
			after, err := ct.Snapshot()
			if assert.NoError(t, err) {
				assert.Equal(t, before.Digest, after.Digest, "rejected call changed state")
			}
		})
		return ct
	}, tests)
}

func TestAdminSettersUpdateOneField(t *testing.T) {
	ct := SetupContractTest(t)
	want, err := ct.Config()
	require.NoError(t, err)

	steps := []struct {
		name  string
		call  func() error
		apply func(cfg *contract.Configuration)
	}{
		{"unit price", func() error { return ct.SetUnitPrice(ownerAddress, uint256.NewInt(42)) },
			func(cfg *contract.Configuration) { cfg.UnitPrice = uint256.NewInt(42) }},
		{"base uri", func() error { return ct.SetBaseURI(ownerAddress, "ar://new/") },
			func(cfg *contract.Configuration) { cfg.BaseURI = "ar://new/" }},
		{"not revealed uri", func() error { return ct.SetNotRevealedURI(ownerAddress, "ar://hidden") },
			func(cfg *contract.Configuration) { cfg.NotRevealedURI = "ar://hidden" }},
		{"contract uri", func() error { return ct.SetContractURI(ownerAddress, "ar://contract") },
			func(cfg *contract.Configuration) { cfg.ContractURI = "ar://contract" }},
		{"max per transaction", func() error { return ct.SetMaxPerTransaction(ownerAddress, 3) },
			func(cfg *contract.Configuration) { cfg.MaxPerTransaction = 3 }},
		{"base extension", func() error { return ct.SetBaseExtension(ownerAddress, ".meta") },
			func(cfg *contract.Configuration) { cfg.BaseExtension = ".meta" }},
		{"royalty receiver", func() error { return ct.SetRoyaltyReceiver(ownerAddress, otherAddress) },
			func(cfg *contract.Configuration) { cfg.RoyaltyReceiver = otherAddress }},
		{"royalty basis points", func() error { return ct.SetRoyaltyBasisPoints(ownerAddress, 15_000) },
			func(cfg *contract.Configuration) { cfg.RoyaltyBasisPoints = 15_000 }},
	}
	for _, step := range steps {
		require.NoError(t, step.call(), step.name)
		step.apply(want)
		got, err := ct.Config()
		require.NoError(t, err)
		assert.Equal(t, want, got, step.name)
	}
	assert.Len(t, ct.EventsOfType("cfg"), len(steps))
}

func TestAccessors(t *testing.T) {
	ct := SetupContractTest(t)

	name, err := ct.Name()
	require.NoError(t, err)
	assert.Equal(t, "Test Drop", name)
	symbol, err := ct.Symbol()
	require.NoError(t, err)
	assert.Equal(t, "TDROP", symbol)
	contractURI, err := ct.ContractURI()
	require.NoError(t, err)
	assert.Equal(t, "ipfs://contract.json", contractURI)
	price, err := ct.UnitPrice()
	require.NoError(t, err)
	assert.Equal(t, uint64(100), price.Uint64())
	maxSupply, err := ct.MaxSupply()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), maxSupply)
	limit, err := ct.MaxPerTransaction()
	require.NoError(t, err)
	assert.Equal(t, uint64(10), limit)
	paused, err := ct.Paused()
	require.NoError(t, err)
	assert.True(t, paused)
	revealed, err := ct.Revealed()
	require.NoError(t, err)
	assert.False(t, revealed)

	// the returned price is a copy
	price.SetUint64(1)
	again, err := ct.UnitPrice()
	require.NoError(t, err)
	assert.Equal(t, uint64(100), again.Uint64())
}

func TestTogglesAreInvolutions(t *testing.T) {
	ct := SetupContractTest(t)

	paused, err := ct.TogglePaused(ownerAddress)
	require.NoError(t, err)
	assert.False(t, paused)
	revealed, err := ct.Revealed()
	require.NoError(t, err)
	assert.False(t, revealed, "pause toggle must not touch reveal")

	paused, err = ct.TogglePaused(ownerAddress)
	require.NoError(t, err)
	assert.True(t, paused)

	revealed, err = ct.ToggleRevealed(ownerAddress)
	require.NoError(t, err)
	assert.True(t, revealed)
	paused, err = ct.Paused()
	require.NoError(t, err)
	assert.True(t, paused, "reveal toggle must not touch pause")

	revealed, err = ct.ToggleRevealed(ownerAddress)
	require.NoError(t, err)
	assert.False(t, revealed)

	assert.Len(t, ct.EventsOfType("pause"), 2)
	assert.Len(t, ct.EventsOfType("reveal"), 2)
}

func TestWithdraw(t *testing.T) {
	ct := SetupContractTest(t)
	ct.Unpause(t)
	_, err := ct.Issue(buyerAddress, 2, uint256.NewInt(250))
	require.NoError(t, err)
	require.Equal(t, uint64(250), ct.FundsOf(t, ct.Address()))

	amount, err := ct.Withdraw(ownerAddress)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), amount.Uint64())
	assert.Zero(t, ct.FundsOf(t, ct.Address()))
	assert.Equal(t, uint64(250), ct.FundsOf(t, ownerAddress))

	// nothing left is not an error
	amount, err = ct.Withdraw(ownerAddress)
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	withdrawals := ct.EventsOfType("withdraw")
	require.Len(t, withdrawals, 2)
	assert.Equal(t, "250", withdrawals[0].Attributes["a"])
}

func TestWithdrawTransferFailure(t *testing.T) {
	ct := SetupContractTestWith(t, defaultDeployArgs(), failingFunds{})
	_, err := ct.Withdraw(ownerAddress)
	AssertCode(t, err, contract.CodeTransferFailed)
	assert.Empty(t, ct.EventsOfType("withdraw"))
}

func TestTransferOwnership(t *testing.T) {
	ct := SetupContractTest(t)

	err := ct.TransferOwnership(ownerAddress, "")
	AssertCode(t, err, contract.CodeInvalidAddress)

	require.NoError(t, ct.TransferOwnership(ownerAddress, otherAddress))
	owner, err := ct.Owner()
	require.NoError(t, err)
	assert.Equal(t, otherAddress, owner)

	// the guard follows the new owner
	_, err = ct.TogglePaused(ownerAddress)
	AssertCode(t, err, contract.CodeUnauthorized)
	_, err = ct.TogglePaused(otherAddress)
	require.NoError(t, err)

	// and so does the free mint
	ids, err := ct.Issue(otherAddress, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids)
	_, err = ct.Issue(ownerAddress, 1, nil)
	AssertCode(t, err, contract.CodeInsufficientPayment)

	transfers := ct.EventsOfType("owner")
	require.Len(t, transfers, 2)
	assert.Equal(t, ownerAddress.String(), transfers[1].Attributes["f"])
	assert.Equal(t, otherAddress.String(), transfers[1].Attributes["t"])
}
