package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9', "OTP must be numeric, got %q", otp)
		}
		seen[otp] = true
	}
	assert.Greater(t, len(seen), 1, "repeated calls should not all yield the same code")
}

func TestGenerateToken(t *testing.T) {
	first, err := GenerateToken()
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
