package contract

import (
	"strconv"

	"vsc_nft_drop/state"
)

// TokenURI resolves the metadata locator of item id. Before the reveal
// every item shares NotRevealedURI; afterwards the locator is BaseURI, the
// decimal id and BaseExtension concatenated as-is.
func (c *Contract) TokenURI(id uint64) (string, error) {
	var uri string
	err := c.view(func(r state.Reader) error {
		exists, err := c.registry.Exists(r, id)
		if err != nil {
			return storageError("load item", err)
		}
		if !exists {
			return newError(CodeUnknownItem, "item %d was never issued", id)
		}
		cfg, err := loadConfig(r)
		if err != nil {
			return err
		}
		uri = resolveLocator(cfg, id)
		return nil
	})
	return uri, err
}

func resolveLocator(cfg *Configuration, id uint64) string {
	if !cfg.Revealed {
		return cfg.NotRevealedURI
	}
	return cfg.BaseURI + strconv.FormatUint(id, 10) + cfg.BaseExtension
}
