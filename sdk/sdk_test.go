package sdk

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("  hive:tibfox ")
	require.NoError(t, err)
	assert.Equal(t, Address("hive:tibfox"), addr)
	assert.False(t, addr.IsZero())

	_, err = ParseAddress("   ")
	assert.Error(t, err)
}

func TestZeroAddress(t *testing.T) {
	assert.True(t, ZeroAddress.IsZero())
	assert.True(t, Address(" ").IsZero())
	assert.Equal(t, "", ZeroAddress.String())
}

func TestNewTxID(t *testing.T) {
	a, b := NewTxID(), NewTxID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
