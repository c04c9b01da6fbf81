package service

import (
	"strings"

	tokenDomain "github.com/allisson/tokencrypt/internal/token/domain"
)

// CompactPadding replaces the trailing run of "=" in s with sentinel letters, longest
// run first: every four pad characters become Z, and what is left becomes Y, X or W.
// A six-character run becomes "ZX". s without padding is returned unchanged.
func CompactPadding(s string) string {
	trimmed := strings.TrimRight(s, string(tokenDomain.PadChar))
	pad := len(s) - len(trimmed)
	if pad == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(trimmed) + pad/4 + 1)
	b.WriteString(trimmed)
	for ; pad >= 4; pad -= 4 {
		b.WriteByte(tokenDomain.SentinelFour)
	}
	switch pad {
	case 3:
		b.WriteByte(tokenDomain.SentinelThree)
	case 2:
		b.WriteByte(tokenDomain.SentinelTwo)
	case 1:
		b.WriteByte(tokenDomain.SentinelOne)
	}
	return b.String()
}

// ExpandPadding is the inverse of CompactPadding: it turns the trailing run of sentinel
// letters in s back into "=" characters.
func ExpandPadding(s string) string {
	data, pad := splitSentinels(s)
	if pad == 0 {
		return s
	}
	return data + strings.Repeat(string(tokenDomain.PadChar), pad)
}

// splitSentinels separates the trailing sentinel run from s and returns the data part
// with the number of pad characters the run stands for.
func splitSentinels(s string) (data string, pad int) {
	end := len(s)
	for end > 0 {
		n := tokenDomain.SentinelRun(s[end-1])
		if n == 0 {
			break
		}
		pad += n
		end--
	}
	return s[:end], pad
}
