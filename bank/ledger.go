// Package bank is the funds-transfer primitive of the drop: a single-asset
// balance ledger kept in contract state.
package bank

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

const balancePrefix = "bank:" // + address -> big-endian uint256

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrZeroRecipient       = errors.New("cannot send to the zero address")
	ErrBalanceOverflow     = errors.New("balance overflows uint256")
)

// Ledger moves value between accounts.
type Ledger struct{}

// Balance returns the balance of addr; unknown accounts hold zero.
func (Ledger) Balance(r state.Reader, addr sdk.Address) (*uint256.Int, error) {
	b, err := r.Get(balancePrefix + addr.String())
	if err != nil {
		return nil, errors.Wrapf(err, "load balance of %s", addr)
	}
	if len(b) > 32 {
		return nil, errors.Errorf("corrupt balance of %s", addr)
	}
	return new(uint256.Int).SetBytes(b), nil
}

// Deposit credits amount to addr out of thin air. Hosts use it to fund
// accounts; the contract itself never calls it.
func (l Ledger) Deposit(rw state.ReadWriter, addr sdk.Address, amount *uint256.Int) error {
	if addr.IsZero() {
		return ErrZeroRecipient
	}
	bal, err := l.Balance(rw, addr)
	if err != nil {
		return err
	}
	sum, overflow := new(uint256.Int).AddOverflow(bal, amount)
	if overflow {
		return errors.Wrapf(ErrBalanceOverflow, "deposit to %s", addr)
	}
	l.put(rw, addr, sum)
	return nil
}

// Send moves amount from one account to another.
func (l Ledger) Send(rw state.ReadWriter, from, to sdk.Address, amount *uint256.Int) error {
	if to.IsZero() {
		return ErrZeroRecipient
	}
	if amount == nil || amount.IsZero() {
		return nil
	}
	fromBal, err := l.Balance(rw, from)
	if err != nil {
		return err
	}
	if fromBal.Lt(amount) {
		return errors.Wrapf(ErrInsufficientBalance, "%s holds %s, needs %s", from, fromBal.Dec(), amount.Dec())
	}
	if from == to {
		return nil
	}
	toBal, err := l.Balance(rw, to)
	if err != nil {
		return err
	}
	sum, overflow := new(uint256.Int).AddOverflow(toBal, amount)
	if overflow {
		return errors.Wrapf(ErrBalanceOverflow, "send to %s", to)
	}
	l.put(rw, from, new(uint256.Int).Sub(fromBal, amount))
	l.put(rw, to, sum)
	return nil
}

func (Ledger) put(w state.Writer, addr sdk.Address, amount *uint256.Int) {
	if amount.IsZero() {
		w.Delete(balancePrefix + addr.String())
		return
	}
	w.Set(balancePrefix+addr.String(), amount.Bytes())
}
