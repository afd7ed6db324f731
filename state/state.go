// Package state is the key/value layer the contract persists through.
//
// A Store is the durable backend. Every contract call runs against a
// Staging write set layered over the Store; the set is handed to
// Store.Commit in one piece when the call succeeds and dropped otherwise,
// so no partial call is ever observable.
package state

// Reader reads committed or staged values. A missing key yields (nil, nil).
type Reader interface {
	Get(key string) ([]byte, error)
}

// Writer buffers mutations.
type Writer interface {
	Set(key string, value []byte)
	Delete(key string)
}

// ReadWriter is the view a single contract call works against.
type ReadWriter interface {
	Reader
	Writer
}

// Change is one staged mutation. Deleted changes carry no value.
type Change struct {
	Key     string
	Value   []byte
	Deleted bool
}

// Store is a durable backend that applies a change set atomically.
type Store interface {
	Reader
	Commit(changes []Change) error
}
