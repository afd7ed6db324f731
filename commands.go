package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"vsc_nft_drop/bank"
	"vsc_nft_drop/config"
	"vsc_nft_drop/contract"
	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

// host carries what every command needs.
type host struct {
	store  state.Store
	flags  globalFlags
	stdout io.Writer
	opts   contract.Options
}

type command struct {
	args []string
	help string
	run  func(h *host, args []string) error
}

func (c command) usage() string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = "<" + a + ">"
	}
	return strings.Join(parts, " ")
}

var commands = map[string]command{
	"deploy":             {nil, "deploy a drop from --config, owned by --sender", runDeploy},
	"deposit":            {[]string{"account", "amount"}, "credit funds to an account (local faucet)", runDeposit},
	"mint":               {[]string{"amount"}, "mint items to --sender, paying --value", runMint},
	"token-uri":          {[]string{"id"}, "print the metadata locator of an item", runTokenURI},
	"owner-of":           {[]string{"id"}, "print the holder of an item", runOwnerOf},
	"wallet":             {[]string{"account"}, "list the items held by an account", runWallet},
	"royalty":            {[]string{"id", "sale-price"}, "print the royalty owed on a sale", runRoyalty},
	"balance":            {[]string{"account"}, "print funds and item count of an account", runBalance},
	"set":                {[]string{"field", "value"}, "update one setting (owner only)", runSet},
	"pause":              {nil, "toggle the pause switch (owner only)", runPause},
	"reveal":             {nil, "toggle the reveal switch (owner only)", runReveal},
	"withdraw":           {nil, "send the contract balance to the owner", runWithdraw},
	"transfer-ownership": {[]string{"new-owner"}, "hand the drop to another account", runTransferOwnership},
	"state":              {nil, "print a snapshot of the drop with its digest", runState},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// setters maps `set` field names to their owner-only operation.
var setters = map[string]func(c *contract.Contract, caller sdk.Address, value string) error{
	"unit-price": func(c *contract.Contract, caller sdk.Address, value string) error {
		price, err := parseAmount(value)
		if err != nil {
			return err
		}
		return c.SetUnitPrice(caller, price)
	},
	"base-uri": func(c *contract.Contract, caller sdk.Address, value string) error {
		return c.SetBaseURI(caller, value)
	},
	"not-revealed-uri": func(c *contract.Contract, caller sdk.Address, value string) error {
		return c.SetNotRevealedURI(caller, value)
	},
	"contract-uri": func(c *contract.Contract, caller sdk.Address, value string) error {
		return c.SetContractURI(caller, value)
	},
	"base-extension": func(c *contract.Contract, caller sdk.Address, value string) error {
		return c.SetBaseExtension(caller, value)
	},
	"max-per-transaction": func(c *contract.Contract, caller sdk.Address, value string) error {
		n, err := parseUint(value)
		if err != nil {
			return err
		}
		return c.SetMaxPerTransaction(caller, n)
	},
	"royalty-receiver": func(c *contract.Contract, caller sdk.Address, value string) error {
		addr, err := sdk.ParseAddress(value)
		if err != nil {
			return err
		}
		return c.SetRoyaltyReceiver(caller, addr)
	},
	"royalty-basis-points": func(c *contract.Contract, caller sdk.Address, value string) error {
		n, err := parseUint(value)
		if err != nil {
			return err
		}
		return c.SetRoyaltyBasisPoints(caller, n)
	},
}

func (h *host) open() (*contract.Contract, error) {
	return contract.Open(h.store, h.opts)
}

func (h *host) sender() (sdk.Address, error) {
	addr, err := sdk.ParseAddress(h.flags.sender)
	if err != nil {
		return sdk.ZeroAddress, fmt.Errorf("--sender: %w", err)
	}
	return addr, nil
}

func (h *host) print(v any) error {
	enc := json.NewEncoder(h.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runDeploy(h *host, _ []string) error {
	if h.flags.deployFile == "" {
		return fmt.Errorf("deploy needs --config")
	}
	sender, err := h.sender()
	if err != nil {
		return err
	}
	args, err := config.LoadDeployFile(h.flags.deployFile)
	if err != nil {
		return err
	}
	c, err := contract.Deploy(h.store, sender, args, h.opts)
	if err != nil {
		return err
	}
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	return h.print(cfg)
}

func runDeposit(h *host, args []string) error {
	addr, err := sdk.ParseAddress(args[0])
	if err != nil {
		return err
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	rw := state.NewStaging(h.store)
	if err := (bank.Ledger{}).Deposit(rw, addr, amount); err != nil {
		return err
	}
	if err := rw.CommitTo(h.store); err != nil {
		return err
	}
	balance, err := bank.Ledger{}.Balance(h.store, addr)
	if err != nil {
		return err
	}
	return h.print(map[string]string{"account": addr.String(), "balance": balance.Dec()})
}

func runMint(h *host, args []string) error {
	amount, err := parseUint(args[0])
	if err != nil {
		return err
	}
	paid, err := parseAmount(h.flags.value)
	if err != nil {
		return fmt.Errorf("--value: %w", err)
	}
	sender, err := h.sender()
	if err != nil {
		return err
	}
	c, err := h.open()
	if err != nil {
		return err
	}
	ids, err := c.Issue(sender, amount, paid)
	if err != nil {
		return err
	}
	return h.print(map[string]any{"ids": ids})
}

func runTokenURI(h *host, args []string) error {
	id, err := parseUint(args[0])
	if err != nil {
		return err
	}
	c, err := h.open()
	if err != nil {
		return err
	}
	uri, err := c.TokenURI(id)
	if err != nil {
		return err
	}
	return h.print(map[string]string{"uri": uri})
}

func runOwnerOf(h *host, args []string) error {
	id, err := parseUint(args[0])
	if err != nil {
		return err
	}
	c, err := h.open()
	if err != nil {
		return err
	}
	owner, err := c.OwnerOf(id)
	if err != nil {
		return err
	}
	return h.print(map[string]string{"owner": owner.String()})
}

func runWallet(h *host, args []string) error {
	c, err := h.open()
	if err != nil {
		return err
	}
	ids, err := c.WalletOfOwner(sdk.Address(strings.TrimSpace(args[0])))
	if err != nil {
		return err
	}
	return h.print(map[string]any{"ids": ids})
}

func runRoyalty(h *host, args []string) error {
	id, err := parseUint(args[0])
	if err != nil {
		return err
	}
	salePrice, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	c, err := h.open()
	if err != nil {
		return err
	}
	receiver, royalty, err := c.RoyaltyInfo(id, salePrice)
	if err != nil {
		return err
	}
	return h.print(map[string]string{"receiver": receiver.String(), "amount": royalty.Dec()})
}

func runBalance(h *host, args []string) error {
	addr, err := sdk.ParseAddress(args[0])
	if err != nil {
		return err
	}
	c, err := h.open()
	if err != nil {
		return err
	}
	funds, err := c.Funds(addr)
	if err != nil {
		return err
	}
	items, err := c.BalanceOf(addr)
	if err != nil {
		return err
	}
	return h.print(map[string]any{"account": addr.String(), "funds": funds.Dec(), "items": items})
}

func runSet(h *host, args []string) error {
	set, ok := setters[args[0]]
	if !ok {
		names := make([]string, 0, len(setters))
		for name := range setters {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown field %q, want one of %s", args[0], strings.Join(names, ", "))
	}
	sender, err := h.sender()
	if err != nil {
		return err
	}
	c, err := h.open()
	if err != nil {
		return err
	}
	if err := set(c, sender, args[1]); err != nil {
		return err
	}
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	return h.print(cfg)
}

func runPause(h *host, _ []string) error {
	return h.toggle(func(c *contract.Contract, caller sdk.Address) (bool, error) {
		return c.TogglePaused(caller)
	}, "paused")
}

func runReveal(h *host, _ []string) error {
	return h.toggle(func(c *contract.Contract, caller sdk.Address) (bool, error) {
		return c.ToggleRevealed(caller)
	}, "revealed")
}

func (h *host) toggle(flip func(c *contract.Contract, caller sdk.Address) (bool, error), name string) error {
	sender, err := h.sender()
	if err != nil {
		return err
	}
	c, err := h.open()
	if err != nil {
		return err
	}
	v, err := flip(c, sender)
	if err != nil {
		return err
	}
	return h.print(map[string]bool{name: v})
}

func runWithdraw(h *host, _ []string) error {
	sender, err := h.sender()
	if err != nil {
		return err
	}
	c, err := h.open()
	if err != nil {
		return err
	}
	amount, err := c.Withdraw(sender)
	if err != nil {
		return err
	}
	return h.print(map[string]string{"to": sender.String(), "amount": amount.Dec()})
}

func runTransferOwnership(h *host, args []string) error {
	sender, err := h.sender()
	if err != nil {
		return err
	}
	c, err := h.open()
	if err != nil {
		return err
	}
	newOwner := sdk.Address(strings.TrimSpace(args[0]))
	if err := c.TransferOwnership(sender, newOwner); err != nil {
		return err
	}
	return h.print(map[string]string{"owner": newOwner.String()})
}

func runState(h *host, _ []string) error {
	c, err := h.open()
	if err != nil {
		return err
	}
	snap, err := c.Snapshot()
	if err != nil {
		return err
	}
	return h.print(snap)
}

func parseUint(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an unsigned integer", s)
	}
	return n, nil
}

func parseAmount(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%q is not a 256-bit amount: %w", s, err)
	}
	return v, nil
}
