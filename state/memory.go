package state

import "sync"

// MemoryStore is a map-backed Store used by tests and dry runs.
type MemoryStore struct {
	mu sync.RWMutex
	db map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{db: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.db[key]
	if !ok {
		return nil, nil
	}
	return clone(val), nil
}

func (m *MemoryStore) Commit(changes []Change) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range changes {
		if c.Deleted {
			delete(m.db, c.Key)
			continue
		}
		m.db[c.Key] = clone(c.Value)
	}
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.db)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
