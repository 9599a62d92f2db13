package security

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Roundtrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.NoError(t, h.Compare(hash, "secret123"))
	require.Error(t, h.Compare(hash, "wrong"))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(0)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
}
