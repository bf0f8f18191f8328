package model

import "strings"

// SymbolLabel is the label carried by filler symbol bits.
const SymbolLabel = "Symbol"

// BitKind says which kind of source produced a bit.
type BitKind string

const (
	KindNumber BitKind = "number"
	KindText   BitKind = "text"
	KindSymbol BitKind = "symbol"
)

// Bit is one fragment of a password and the fact it came from.
type Bit struct {
	Fragment string  `json:"fragment"`
	Label    string  `json:"label"`
	Kind     BitKind `json:"kind"`
}

// Password is an ordered sequence of bits, in generation order.
type Password []Bit

// String renders the password by concatenating fragments.
func (p Password) String() string {
	var sb strings.Builder
	for _, b := range p {
		sb.WriteString(b.Fragment)
	}
	return sb.String()
}

// Labels returns the label of each bit in order.
func (p Password) Labels() []string {
	labels := make([]string, len(p))
	for i, b := range p {
		labels[i] = b.Label
	}
	return labels
}

// GenerationSettings controls a single password generation.
// TargetLength counts bits, not characters.
type GenerationSettings struct {
	TargetLength   int
	IncludeSymbols bool
}
