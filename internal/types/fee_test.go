package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformFee(t *testing.T) {
	// 0.5% of 10000 units
	assert.Equal(t, uint64(50), PlatformFee(10000, 50))
	// rounds down
	assert.Equal(t, uint64(0), PlatformFee(100, 50))
	assert.Equal(t, uint64(4), PlatformFee(999, 50))
	// 5% cap
	assert.Equal(t, uint64(500), PlatformFee(10000, MaxFeeBasisPoints))
	// zero fee
	assert.Equal(t, uint64(0), PlatformFee(10000, 0))
	assert.Equal(t, uint64(0), PlatformFee(0, 50))
}

func TestPlatformFeeNoOverflow(t *testing.T) {
	// A naive amount*feeBps would wrap near the uint64 ceiling.
	pooled := uint64(math.MaxUint64)
	fee := PlatformFee(pooled, MaxFeeBasisPoints)
	assert.Equal(t, pooled/10000*500+pooled%10000*500/10000, fee)
	assert.Less(t, fee, pooled)
}
