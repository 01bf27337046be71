package util

import "strings"

// Brazilian mobile numbers: 55 + 2-digit DDD + 9-digit number.
const phoneDigits = 13

// NormalizePhone strips everything but digits, prepends the country code
// when missing and caps the result at 13 digits. "11999998888" becomes
// "+5511999998888"; an already-prefixed "5511999998888" is not doubled.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	if len(digits) > phoneDigits {
		digits = digits[:phoneDigits]
	}
	return "+" + digits
}

// IsValidPhone reports whether a normalized phone carries the full
// country code, DDD and number.
func IsValidPhone(normalized string) bool {
	return len(strings.TrimPrefix(normalized, "+")) == phoneDigits
}
