package contract

import "vsc_nft_drop/sdk"

// ========================================
// Global Contract Constants & Base Helpers
// ========================================

// ----------------------------------------
// State Keys
// ----------------------------------------
const (
	// configKey holds the CBOR encoded configuration record.
	configKey = "cfg"

	// supplyKey holds issuedCount as a big-endian uint64.
	supplyKey = "supply"

	// ownerKey holds the current administrator address.
	ownerKey = "owner"
)

// ----------------------------------------
// Defaults & Limits
// ----------------------------------------
const (
	defaultMaxPerTransaction = 10

	// royaltyDenominator is the EIP-2981 basis point scale.
	royaltyDenominator = 10_000

	maxNameLength   = 48 // upper bound for the collection name
	maxSymbolLength = 16

	// DefaultAddress is the account that holds mint proceeds when the
	// host does not assign one.
	DefaultAddress sdk.Address = "contract:nft_drop"
)

// ----------------------------------------
// Authorization Logic
// ----------------------------------------

// isAdministrator reports whether caller holds administrative privilege.
// The null identity never does, even if the stored owner were empty.
func isAdministrator(caller, administrator sdk.Address) bool {
	if caller.IsZero() || administrator.IsZero() {
		return false
	}
	return caller == administrator
}
