// Package bits turns personal facts into short password fragments and
// assembles those fragments into passwords.
package bits

import (
	"strconv"

	"github.com/polybius/polybius-go/internal/model"
)

// symbolChars is the top row of a standard keyboard, easy to type without a keypad.
const symbolChars = "!@#$%^&*()-_+="

// maxTextPrefix is the longest prefix taken from a text fact.
const maxTextPrefix = 3

// Symbols returns the filler symbols in their fixed order.
func Symbols() []string {
	out := make([]string, len(symbolChars))
	for i := range symbolChars {
		out[i] = symbolChars[i : i+1]
	}
	return out
}

// Truncate returns the last two decimal digits of value, zero padded.
func Truncate(value uint16) string {
	r := value % 100
	if r < 10 {
		return "0" + strconv.Itoa(int(r))
	}
	return strconv.Itoa(int(r))
}

// FromNumber builds a bit from a categorized number.
//
// Months and days are always two digits. Years are either the full value or
// two digits, chosen by a coin flip. Relevant numbers are kept as given.
func FromNumber(rnd RandomSource, n model.Number) model.Bit {
	var fragment string
	switch n.Category {
	case model.BirthMonth, model.BirthDay:
		fragment = Truncate(n.Value)
	case model.BirthYear, model.CurrentYear:
		if rnd.Flip() {
			fragment = strconv.Itoa(int(n.Value))
		} else {
			fragment = Truncate(n.Value)
		}
	default:
		fragment = strconv.Itoa(int(n.Value))
	}

	return model.Bit{
		Fragment: fragment,
		Label:    n.Category.Label(),
		Kind:     model.KindNumber,
	}
}

// FromText builds a bit from the first one to three characters of text.
// Shorter texts are used whole; prefixes never split a code point.
func FromText(rnd RandomSource, text string) model.Bit {
	k := rnd.IntN(maxTextPrefix) + 1

	end := len(text)
	count := 0
	for i := range text {
		if count == k {
			end = i
			break
		}
		count++
	}

	return model.Bit{
		Fragment: text[:end],
		Label:    text,
		Kind:     model.KindText,
	}
}

// FromSymbol builds a filler bit holding one random symbol.
func FromSymbol(rnd RandomSource) model.Bit {
	i := rnd.IntN(len(symbolChars))
	return model.Bit{
		Fragment: symbolChars[i : i+1],
		Label:    model.SymbolLabel,
		Kind:     model.KindSymbol,
	}
}
