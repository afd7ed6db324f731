package state

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// GetUint64 reads a big-endian uint64 counter; a missing key reads as 0.
func GetUint64(r Reader, key string) (uint64, error) {
	b, err := r.Get(key)
	if err != nil {
		return 0, err
	}
	if b == nil {
		return 0, nil
	}
	if len(b) != 8 {
		return 0, errors.Errorf("counter %s: expected 8 bytes, got %d", key, len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

// SetUint64 stores v as a big-endian uint64.
func SetUint64(w Writer, key string, v uint64) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	w.Set(key, b)
}
