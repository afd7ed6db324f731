// Package sdk holds the host-side identities shared by the contract and its
// collaborators: account addresses and transaction ids.
package sdk

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Address identifies an account on the host network, e.g. "hive:tibfox".
type Address string

// ZeroAddress is the null identity. Nothing can be minted or sent to it.
const ZeroAddress Address = ""

func (a Address) String() string {
	return string(a)
}

// IsZero reports whether a is the null identity.
func (a Address) IsZero() bool {
	return strings.TrimSpace(string(a)) == ""
}

// ParseAddress trims s and rejects the null identity.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroAddress, errors.New("address is empty")
	}
	return Address(s), nil
}

// NewTxID returns a fresh random transaction id.
func NewTxID() string {
	return uuid.NewString()
}
