// Package domain defines the token alphabet and codec errors.
package domain

const (
	// Alphabet is the RFC 4648 base32hex alphabet. Symbol order matches numeric order,
	// so tokens sort like the bytes they encode.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

	// PadChar is the standard base32 padding character. It never appears in a token.
	PadChar = '='

	// QuantumSize is the number of characters in one padded base32 group.
	QuantumSize = 8
)

// Sentinel letters stand for runs of trailing pad characters.
const (
	SentinelOne   byte = 'W'
	SentinelTwo   byte = 'X'
	SentinelThree byte = 'Y'
	SentinelFour  byte = 'Z'
)

// SentinelRun returns how many pad characters c stands for, or 0 if c is not a sentinel.
func SentinelRun(c byte) int {
	switch c {
	case SentinelOne:
		return 1
	case SentinelTwo:
		return 2
	case SentinelThree:
		return 3
	case SentinelFour:
		return 4
	default:
		return 0
	}
}

// IsAlphabetChar reports whether c is an upper-case base32hex symbol.
func IsAlphabetChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'V')
}
