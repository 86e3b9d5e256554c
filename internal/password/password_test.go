package password

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("demo123")
	require.NoError(t, err)

	assert.NotEqual(t, "demo123", h)
	assert.True(t, Verify(h, "demo123"))
	assert.False(t, Verify(h, "demo124"))
	assert.False(t, IsLegacy(h))
}

func TestVerify_LegacySHA256(t *testing.T) {
	sum := sha256.Sum256([]byte("admin123"))
	legacy := hex.EncodeToString(sum[:])

	assert.True(t, IsLegacy(legacy))
	assert.True(t, Verify(legacy, "admin123"))
	assert.False(t, Verify(legacy, "admin"))
}
