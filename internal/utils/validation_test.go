package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0x1111111111111111111111111111111111111111"))
	assert.True(t, IsValidAddress("0xAbCdEf1234567890aBcDeF1234567890abcdef12"))

	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress("1111111111111111111111111111111111111111"))
	assert.False(t, IsValidAddress("0x111111111111111111111111111111111111111"))   // 39 hex chars
	assert.False(t, IsValidAddress("0x11111111111111111111111111111111111111111")) // 41 hex chars
	assert.False(t, IsValidAddress("0xgggggggggggggggggggggggggggggggggggggggg"))
	// The null identity is well-formed but never valid.
	assert.False(t, IsValidAddress(ZeroAddress))
	assert.False(t, IsValidAddress("0x0000000000000000000000000000000000000000"))
}

func TestIsZeroAddress(t *testing.T) {
	assert.True(t, IsZeroAddress(ZeroAddress))
	assert.True(t, IsZeroAddress("0X0000000000000000000000000000000000000000"))
	assert.False(t, IsZeroAddress("0x0000000000000000000000000000000000000001"))
}

func TestSameAddress(t *testing.T) {
	assert.True(t, SameAddress(
		"0xabcdef1234567890abcdef1234567890abcdef12",
		"0xABCDEF1234567890ABCDEF1234567890ABCDEF12",
	))
	assert.False(t, SameAddress(
		"0xabcdef1234567890abcdef1234567890abcdef12",
		"0xabcdef1234567890abcdef1234567890abcdef13",
	))
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0xabcdef1234567890abcdef1234567890abcdef12",
		NormalizeAddress("0xAbCdEf1234567890aBcDeF1234567890abcdef12"),
	)
}
