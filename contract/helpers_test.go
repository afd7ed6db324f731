package contract_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vsc_nft_drop/bank"
	"vsc_nft_drop/contract"
	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

const (
	ownerAddress sdk.Address = "hive:tibfox"
	buyerAddress sdk.Address = "hive:someone"
	otherAddress sdk.Address = "hive:another"
)

// ContractTest is one deployed drop over an in-memory store.
type ContractTest struct {
	*contract.Contract
	Store  *state.MemoryStore
	Events []contract.Event
}

func defaultDeployArgs() contract.DeployArgs {
	return contract.DeployArgs{
		Name:               "Test Drop",
		Symbol:             "TDROP",
		BaseURI:            "ipfs://base/",
		BaseExtension:      ".json",
		NotRevealedURI:     "ipfs://hidden.json",
		ContractURI:        "ipfs://contract.json",
		UnitPrice:          uint256.NewInt(100),
		MaxSupply:          5,
		RoyaltyReceiver:    ownerAddress,
		RoyaltyBasisPoints: 250,
	}
}

// SetupContractTest deploys a drop owned by ownerAddress and funds the buyer
// and another account with 1000 each.
func SetupContractTest(t *testing.T) *ContractTest {
	return SetupContractTestWith(t, defaultDeployArgs(), nil)
}

// SetupContractTestWith deploys args; funds replaces the default ledger when
// not nil.
func SetupContractTestWith(t *testing.T, args contract.DeployArgs, funds contract.Funds) *ContractTest {
	t.Helper()
	ct := &ContractTest{Store: state.NewMemoryStore()}
	c, err := contract.Deploy(ct.Store, ownerAddress, args, contract.Options{
		Funds:   funds,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnEvent: func(ev contract.Event) { ct.Events = append(ct.Events, ev) },
	})
	require.NoError(t, err)
	ct.Contract = c
	ct.Deposit(t, buyerAddress, 1000)
	ct.Deposit(t, otherAddress, 1000)
	return ct
}

// Deposit credits amount to addr directly in the store.
func (ct *ContractTest) Deposit(t *testing.T, addr sdk.Address, amount uint64) {
	t.Helper()
	rw := state.NewStaging(ct.Store)
	require.NoError(t, bank.Ledger{}.Deposit(rw, addr, uint256.NewInt(amount)))
	require.NoError(t, rw.CommitTo(ct.Store))
}

// Unpause opens minting.
func (ct *ContractTest) Unpause(t *testing.T) {
	t.Helper()
	paused, err := ct.TogglePaused(ownerAddress)
	require.NoError(t, err)
	require.False(t, paused)
}

func (ct *ContractTest) FundsOf(t *testing.T, addr sdk.Address) uint64 {
	t.Helper()
	bal, err := ct.Funds(addr)
	require.NoError(t, err)
	return bal.Uint64()
}

// EventsOfType returns the captured events of one kind.
func (ct *ContractTest) EventsOfType(eventType string) []contract.Event {
	var out []contract.Event
	for _, ev := range ct.Events {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

// AssertCode fails unless err carries code.
func AssertCode(t *testing.T, err error, code contract.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, contract.CodeOf(err), err.Error())
}

// failingFunds rejects every transfer.
type failingFunds struct {
	bank.Ledger
}

func (failingFunds) Send(state.ReadWriter, sdk.Address, sdk.Address, *uint256.Int) error {
	return errors.New("host refused transfer")
}

type ContractTestCase struct {
	Name       string
	Call       func(ct *ContractTest) error
	ExpectCode contract.Code // empty means success
}

// for table-driven tests
func RunContractTests(t *testing.T, setup func(t *testing.T) *ContractTest, tests []ContractTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			ct := setup(t)
			err := tt.Call(ct)
			if tt.ExpectCode == "" {
				assert.NoError(t, err)
				return
			}
			AssertCode(t, err, tt.ExpectCode)
		})
	}
}
