package bits

import (
	"math"
	"unicode/utf8"
)

// Entropy estimates the strength of a rendered password in bits as
// length * log2(charset), where charset grows with each character class used.
// It ignores that fragments come from personal facts, so it is an upper bound.
func Entropy(password string) float64 {
	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	charset := 0
	if digit {
		charset += 10
	}
	if lower {
		charset += 26
	}
	if upper {
		charset += 26
	}
	if other {
		charset += 33
	}
	if charset == 0 {
		return 0
	}

	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(charset))
}
