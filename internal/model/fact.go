package model

import "strings"

// NumberCategory describes what a number means to the user. It decides how
// the number is shortened when it becomes part of a password.
type NumberCategory int

const (
	// RelevantNumber is the zero value so an unset category never truncates.
	RelevantNumber NumberCategory = iota
	BirthYear
	BirthMonth
	BirthDay
	CurrentYear
)

type categoryInfo struct {
	key   string
	label string
}

var categoryTable = [...]categoryInfo{
	RelevantNumber: {key: "relevant_number", label: "Relevant Number"},
	BirthYear:      {key: "birth_year", label: "Birth Year"},
	BirthMonth:     {key: "birth_month", label: "Birth Month"},
	BirthDay:       {key: "birth_day", label: "Birth Day"},
	CurrentYear:    {key: "current_year", label: "Current Year"},
}

// Categories returns every category in display order.
func Categories() []NumberCategory {
	return []NumberCategory{BirthYear, BirthMonth, BirthDay, CurrentYear, RelevantNumber}
}

func (c NumberCategory) info() categoryInfo {
	if c < 0 || int(c) >= len(categoryTable) {
		return categoryTable[RelevantNumber]
	}
	return categoryTable[c]
}

// Label returns the human-facing name, e.g. "Birth Year".
func (c NumberCategory) Label() string { return c.info().label }

// Key returns the stable form key, e.g. "birth_year".
func (c NumberCategory) Key() string { return c.info().key }

func (c NumberCategory) String() string { return c.Label() }

// ParseCategory maps a form key to a category. Unknown keys yield RelevantNumber.
func ParseCategory(key string) NumberCategory {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, info := range categoryTable {
		if info.key == key {
			return NumberCategory(i)
		}
	}
	return RelevantNumber
}

// MarshalText implements encoding.TextMarshaler using the form key.
func (c NumberCategory) MarshalText() ([]byte, error) {
	return []byte(c.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (c *NumberCategory) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}

// Number is a categorized numeric fact.
type Number struct {
	Value    uint16         `json:"value" yaml:"value"`
	Category NumberCategory `json:"category" yaml:"category"`
}

// FactPool holds the facts a password is built from. Generation only reads it.
type FactPool struct {
	Numbers []Number `json:"numbers" yaml:"numbers"`
	Texts   []string `json:"texts" yaml:"texts"`
}

// Len returns the total number of facts.
func (p FactPool) Len() int {
	return len(p.Numbers) + len(p.Texts)
}

// WithNumber returns a copy of the pool with n placed before the other numbers.
func (p FactPool) WithNumber(n Number) FactPool {
	numbers := make([]Number, 0, len(p.Numbers)+1)
	numbers = append(numbers, n)
	numbers = append(numbers, p.Numbers...)

	texts := make([]string, len(p.Texts))
	copy(texts, p.Texts)

	return FactPool{Numbers: numbers, Texts: texts}
}
