package contract

import (
	"github.com/holiman/uint256"

	"vsc_nft_drop/codec"
	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

// configRecord is the persisted form of Configuration. The price is kept as
// big-endian bytes so the record does not depend on how uint256 encodes.
type configRecord struct {
	Name               string `cbor:"1,keyasint"`
	Symbol             string `cbor:"2,keyasint"`
	BaseURI            string `cbor:"3,keyasint"`
	BaseExtension      string `cbor:"4,keyasint"`
	NotRevealedURI     string `cbor:"5,keyasint"`
	ContractURI        string `cbor:"6,keyasint"`
	Revealed           bool   `cbor:"7,keyasint"`
	Paused             bool   `cbor:"8,keyasint"`
	MaxPerTransaction  uint64 `cbor:"9,keyasint"`
	UnitPrice          []byte `cbor:"10,keyasint"`
	MaxSupply          uint64 `cbor:"11,keyasint"`
	RoyaltyReceiver    string `cbor:"12,keyasint"`
	RoyaltyBasisPoints uint64 `cbor:"13,keyasint"`
}

func newConfigRecord(cfg *Configuration) configRecord {
	return configRecord{
		Name:               cfg.Name,
		Symbol:             cfg.Symbol,
		BaseURI:            cfg.BaseURI,
		BaseExtension:      cfg.BaseExtension,
		NotRevealedURI:     cfg.NotRevealedURI,
		ContractURI:        cfg.ContractURI,
		Revealed:           cfg.Revealed,
		Paused:             cfg.Paused,
		MaxPerTransaction:  cfg.MaxPerTransaction,
		UnitPrice:          cfg.price().Bytes(),
		MaxSupply:          cfg.MaxSupply,
		RoyaltyReceiver:    cfg.RoyaltyReceiver.String(),
		RoyaltyBasisPoints: cfg.RoyaltyBasisPoints,
	}
}

func (rec configRecord) configuration() (*Configuration, error) {
	if len(rec.UnitPrice) > 32 {
		return nil, newError(CodeStorage, "decode configuration: unit price exceeds 256 bits")
	}
	return &Configuration{
		Name:               rec.Name,
		Symbol:             rec.Symbol,
		BaseURI:            rec.BaseURI,
		BaseExtension:      rec.BaseExtension,
		NotRevealedURI:     rec.NotRevealedURI,
		ContractURI:        rec.ContractURI,
		Revealed:           rec.Revealed,
		Paused:             rec.Paused,
		MaxPerTransaction:  rec.MaxPerTransaction,
		UnitPrice:          new(uint256.Int).SetBytes(rec.UnitPrice),
		MaxSupply:          rec.MaxSupply,
		RoyaltyReceiver:    sdk.Address(rec.RoyaltyReceiver),
		RoyaltyBasisPoints: rec.RoyaltyBasisPoints,
	}, nil
}

func saveConfig(w state.Writer, cfg *Configuration) error {
	b, err := codec.Marshal(newConfigRecord(cfg))
	if err != nil {
		return storageError("encode configuration", err)
	}
	w.Set(configKey, b)
	return nil
}

func loadConfig(r state.Reader) (*Configuration, error) {
	b, err := r.Get(configKey)
	if err != nil {
		return nil, storageError("load configuration", err)
	}
	if b == nil {
		return nil, ErrNotDeployed
	}
	var rec configRecord
	if err := codec.Unmarshal(b, &rec); err != nil {
		return nil, storageError("decode configuration", err)
	}
	return rec.configuration()
}

func loadIssuedCount(r state.Reader) (uint64, error) {
	n, err := state.GetUint64(r, supplyKey)
	if err != nil {
		return 0, storageError("load issued count", err)
	}
	return n, nil
}

func saveIssuedCount(w state.Writer, n uint64) {
	state.SetUint64(w, supplyKey, n)
}

func loadOwner(r state.Reader) (sdk.Address, error) {
	b, err := r.Get(ownerKey)
	if err != nil {
		return sdk.ZeroAddress, storageError("load owner", err)
	}
	return sdk.Address(b), nil
}

func saveOwner(w state.Writer, owner sdk.Address) {
	w.Set(ownerKey, []byte(owner.String()))
}
