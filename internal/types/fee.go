package types

// MaxFeeBasisPoints caps the platform fee at 5%.
const MaxFeeBasisPoints = uint64(500)

// DefaultFeeBasisPoints is the platform fee applied until the owner changes it (0.5%).
const DefaultFeeBasisPoints = uint64(50)

const basisPointsDenominator = uint64(10000)

// PlatformFee computes the fee taken from the pooled amount on release,
// rounding down. The remainder goes to the recipient. The split form avoids
// overflow for amounts close to the uint64 ceiling.
func PlatformFee(pooledAmount, feeBps uint64) uint64 {
	quotient := pooledAmount / basisPointsDenominator
	remainder := pooledAmount % basisPointsDenominator
	return quotient*feeBps + remainder*feeBps/basisPointsDenominator
}
