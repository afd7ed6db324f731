package contract

import "encoding/json"

// event types
const (
	evMint                 = "mint"
	evConfig               = "cfg"
	evPause                = "pause"
	evReveal               = "reveal"
	evWithdraw             = "withdraw"
	evOwnershipTransferred = "owner"
)

// Event represents a generic event emitted by the contract.
type Event struct {
	Type       string            `json:"t"`   // Type is the kind of event (e.g., "mint", "cfg").
	Attributes map[string]string `json:"att"` // Attributes are key/value pairs with event data.
}

// logEvent is the default event sink: one JSON line per event.
func (c *Contract) logEvent(ev Event) {
	b, err := json.Marshal(ev)
	if err != nil {
		c.logger.Error("encode event", "type", ev.Type, "error", err)
		return
	}
	c.logger.Info("event", "data", string(b))
}
