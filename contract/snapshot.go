package contract

import (
	"encoding/hex"

	"github.com/holiman/uint256"
	"github.com/zeebo/blake3"

	"vsc_nft_drop/codec"
	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

// Snapshot is a consistent view of the persisted drop state.
type Snapshot struct {
	Config      *Configuration `json:"config"`
	IssuedCount uint64         `json:"issuedCount"`
	Owner       sdk.Address    `json:"owner"`
	Balance     *uint256.Int   `json:"balance"`
	// Digest is the blake3 hash of the snapshot's deterministic CBOR form.
	// Two hosts holding the same state report the same digest.
	Digest string `json:"digest"`
}

type snapshotRecord struct {
	Config      configRecord `cbor:"1,keyasint"`
	IssuedCount uint64       `cbor:"2,keyasint"`
	Owner       string       `cbor:"3,keyasint"`
	Balance     []byte       `cbor:"4,keyasint"`
}

// Snapshot reads configuration, issued count, owner and contract balance
// under one lock.
func (c *Contract) Snapshot() (*Snapshot, error) {
	var snap *Snapshot
	err := c.view(func(r state.Reader) error {
		cfg, err := loadConfig(r)
		if err != nil {
			return err
		}
		issued, err := loadIssuedCount(r)
		if err != nil {
			return err
		}
		owner, err := loadOwner(r)
		if err != nil {
			return err
		}
		balance, err := c.funds.Balance(r, c.address)
		if err != nil {
			return storageError("load contract balance", err)
		}
		digest, err := snapshotDigest(cfg, issued, owner, balance)
		if err != nil {
			return err
		}
		snap = &Snapshot{
			Config:      cfg,
			IssuedCount: issued,
			Owner:       owner,
			Balance:     balance,
			Digest:      digest,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func snapshotDigest(cfg *Configuration, issued uint64, owner sdk.Address, balance *uint256.Int) (string, error) {
	b, err := codec.Marshal(snapshotRecord{
		Config:      newConfigRecord(cfg),
		IssuedCount: issued,
		Owner:       owner.String(),
		Balance:     balance.Bytes(),
	})
	if err != nil {
		return "", storageError("encode snapshot", err)
	}
	sum := blake3.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
