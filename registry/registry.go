// Package registry is the enumerable ownership ledger behind the drop: it
// records which account holds each token id and lets callers walk the ids
// held by one account.
//
// It keeps no state of its own; every method works against the state view
// of the calling contract operation, so mints are rolled back together with
// the operation that made them.
package registry

import (
	"encoding/binary"
	"strconv"

	"github.com/pkg/errors"

	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

// key prefixes
const (
	tokenOwnerPrefix = "reg:tok:" // + id -> owner address
	balancePrefix    = "reg:bal:" // + owner -> uint64 count
	ownedIndexPrefix = "reg:idx:" // + owner + ":" + index -> uint64 id
	totalSupplyKey   = "reg:supply"
)

var (
	ErrTokenExists          = errors.New("token already minted")
	ErrNonexistentToken     = errors.New("token does not exist")
	ErrZeroAddress          = errors.New("zero address is not a valid owner")
	ErrOwnerIndexOutOfRange = errors.New("owner index out of bounds")
)

// Registry reads and writes ownership records.
type Registry struct{}

// Exists reports whether id has been minted.
func (Registry) Exists(r state.Reader, id uint64) (bool, error) {
	b, err := r.Get(tokenKey(id))
	if err != nil {
		return false, errors.Wrapf(err, "load token %d", id)
	}
	return b != nil, nil
}

// OwnerOf returns the holder of id.
func (Registry) OwnerOf(r state.Reader, id uint64) (sdk.Address, error) {
	b, err := r.Get(tokenKey(id))
	if err != nil {
		return sdk.ZeroAddress, errors.Wrapf(err, "load token %d", id)
	}
	if b == nil {
		return sdk.ZeroAddress, errors.Wrapf(ErrNonexistentToken, "token %d", id)
	}
	return sdk.Address(b), nil
}

// BalanceOf returns how many tokens owner holds.
func (Registry) BalanceOf(r state.Reader, owner sdk.Address) (uint64, error) {
	if owner.IsZero() {
		return 0, ErrZeroAddress
	}
	n, err := state.GetUint64(r, balancePrefix+owner.String())
	if err != nil {
		return 0, errors.Wrapf(err, "load balance of %s", owner)
	}
	return n, nil
}

// TokenOfOwnerByIndex returns the index-th token held by owner, in mint
// order.
func (reg Registry) TokenOfOwnerByIndex(r state.Reader, owner sdk.Address, index uint64) (uint64, error) {
	balance, err := reg.BalanceOf(r, owner)
	if err != nil {
		return 0, err
	}
	if index >= balance {
		return 0, errors.Wrapf(ErrOwnerIndexOutOfRange, "index %d, balance %d", index, balance)
	}
	b, err := r.Get(ownedKey(owner, index))
	if err != nil {
		return 0, errors.Wrapf(err, "load index %d of %s", index, owner)
	}
	if len(b) != 8 {
		return 0, errors.Errorf("corrupt owner index %d of %s", index, owner)
	}
	return binary.BigEndian.Uint64(b), nil
}

// TotalSupply returns the number of minted tokens.
func (Registry) TotalSupply(r state.Reader) (uint64, error) {
	return state.GetUint64(r, totalSupplyKey)
}

// Mint assigns id to to. It fails if id already exists or to is the zero
// address.
func (reg Registry) Mint(rw state.ReadWriter, to sdk.Address, id uint64) error {
	if to.IsZero() {
		return ErrZeroAddress
	}
	exists, err := reg.Exists(rw, id)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(ErrTokenExists, "token %d", id)
	}
	balance, err := reg.BalanceOf(rw, to)
	if err != nil {
		return err
	}
	total, err := reg.TotalSupply(rw)
	if err != nil {
		return err
	}

	rw.Set(tokenKey(id), []byte(to.String()))
	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, id)
	rw.Set(ownedKey(to, balance), idBytes)
	state.SetUint64(rw, balancePrefix+to.String(), balance+1)
	state.SetUint64(rw, totalSupplyKey, total+1)
	return nil
}

func tokenKey(id uint64) string {
	return tokenOwnerPrefix + strconv.FormatUint(id, 10)
}

func ownedKey(owner sdk.Address, index uint64) string {
	return ownedIndexPrefix + owner.String() + ":" + strconv.FormatUint(index, 10)
}
