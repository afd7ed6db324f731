package contract

import "vsc_nft_drop/state"

// RemainingCapacity returns how many items can still be issued.
func (c *Contract) RemainingCapacity() (uint64, error) {
	var remaining uint64
	err := c.view(func(r state.Reader) error {
		cfg, err := loadConfig(r)
		if err != nil {
			return err
		}
		issued, err := loadIssuedCount(r)
		if err != nil {
			return err
		}
		remaining = remainingCapacity(cfg, issued)
		return nil
	})
	return remaining, err
}

func remainingCapacity(cfg *Configuration, issued uint64) uint64 {
	if issued >= cfg.MaxSupply {
		return 0
	}
	return cfg.MaxSupply - issued
}

// reserve claims n fresh identifiers, issuedCount+1 through issuedCount+n,
// and advances the counter. It never reserves part of a request.
func reserve(rw state.ReadWriter, cfg *Configuration, n uint64) ([]uint64, error) {
	issued, err := loadIssuedCount(rw)
	if err != nil {
		return nil, err
	}
	if n > remainingCapacity(cfg, issued) {
		return nil, newError(CodeSupplyExceeded, "requested %d, remaining %d of %d",
			n, remainingCapacity(cfg, issued), cfg.MaxSupply)
	}
	ids := make([]uint64, n)
	for i := range ids {
		ids[i] = issued + uint64(i) + 1
	}
	saveIssuedCount(rw, issued+n)
	return ids, nil
}
