package state

import (
	"sort"

	"github.com/pkg/errors"
)

// Staging buffers the writes of one call on top of a base Reader. Reads
// see the call's own writes first.
type Staging struct {
	base    Reader
	pending map[string]Change
}

func NewStaging(base Reader) *Staging {
	return &Staging{
		base:    base,
		pending: make(map[string]Change),
	}
}

func (s *Staging) Get(key string) ([]byte, error) {
	if c, ok := s.pending[key]; ok {
		if c.Deleted {
			return nil, nil
		}
		return clone(c.Value), nil
	}
	val, err := s.base.Get(key)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}
	return val, nil
}

func (s *Staging) Set(key string, value []byte) {
	s.pending[key] = Change{Key: key, Value: clone(value)}
}

func (s *Staging) Delete(key string) {
	s.pending[key] = Change{Key: key, Deleted: true}
}

// Changes returns the staged mutations sorted by key.
func (s *Staging) Changes() []Change {
	out := make([]Change, 0, len(s.pending))
	for _, c := range s.pending {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Dirty reports whether anything was staged.
func (s *Staging) Dirty() bool {
	return len(s.pending) > 0
}

// CommitTo flushes the staged set into store and resets the staging.
func (s *Staging) CommitTo(store Store) error {
	if !s.Dirty() {
		return nil
	}
	if err := store.Commit(s.Changes()); err != nil {
		return errors.Wrap(err, "commit staged changes")
	}
	s.Discard()
	return nil
}

// Discard drops every staged write.
func (s *Staging) Discard() {
	s.pending = make(map[string]Change)
}
