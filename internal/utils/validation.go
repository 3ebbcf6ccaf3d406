package utils

import (
	"regexp"
	"strings"
)

// ZeroAddress is the null identity sentinel. It is never a valid recipient,
// fee collector or caller.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsValidAddress checks if the given string is a well-formed 20-byte hex
// identity and not the zero sentinel.
// Note: it does not check any on-chain existence of the identity.
func IsValidAddress(address string) bool {
	if !addressRegex.MatchString(address) {
		return false
	}
	return !IsZeroAddress(address)
}

// IsZeroAddress checks if the given string is the null identity sentinel.
func IsZeroAddress(address string) bool {
	return strings.EqualFold(address, ZeroAddress)
}

// NormalizeAddress lower-cases a hex identity so that ledger keys and role
// comparisons are case-insensitive.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}

// SameAddress compares two hex identities ignoring case.
func SameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}
