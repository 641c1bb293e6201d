package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	hasher := New(bcrypt.MinCost)

	hash, err := hasher.Hash("secret_password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret_password", hash)

	assert.NoError(t, hasher.Compare(hash, "secret_password"))
	assert.Error(t, hasher.Compare(hash, "wrong_password"))
}

func TestHasher_SamePasswordDifferentHashes(t *testing.T) {
	hasher := New(bcrypt.MinCost)

	first, err := hasher.Hash("secret_password")
	require.NoError(t, err)
	second, err := hasher.Hash("secret_password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Compare(first, "secret_password"))
	assert.NoError(t, hasher.Compare(second, "secret_password"))
}

func TestNew_CostOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		cost int
	}{
		{name: "below minimum", cost: bcrypt.MinCost - 1},
		{name: "above maximum", cost: bcrypt.MaxCost + 1},
		{name: "zero", cost: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := New(tt.cost)
			assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
		})
	}
}
