package generator

import "strings"

const (
	UpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerChars  = "abcdefghijklmnopqrstuvwxyz"
	DigitChars  = "0123456789"
	SymbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// charClass describes one selectable character class. cardinality is the
// value the entropy estimator uses, which for symbols is wider than the
// alphabet actually drawn from.
type charClass struct {
	display     string
	chars       string
	cardinality int
	enabled     func(Config) bool
}

// classes is ordered upper, lower, digits, symbols. ComposeCharset relies on it.
var classes = []charClass{
	{display: "A-Z", chars: UpperChars, cardinality: 26, enabled: func(c Config) bool { return c.Upper }},
	{display: "a-z", chars: LowerChars, cardinality: 26, enabled: func(c Config) bool { return c.Lower }},
	{display: "0-9", chars: DigitChars, cardinality: 10, enabled: func(c Config) bool { return c.Digits }},
	{display: "!@#$", chars: SymbolChars, cardinality: 32, enabled: func(c Config) bool { return c.Symbols }},
}

func (c Config) enabledClasses() []charClass {
	var out []charClass
	for _, cl := range classes {
		if cl.enabled(c) {
			out = append(out, cl)
		}
	}
	return out
}

// ComposeCharset concatenates the alphabets of the enabled classes in the
// fixed order upper, lower, digits, symbols.
func ComposeCharset(cfg Config) (string, error) {
	var b strings.Builder
	for _, cl := range cfg.enabledClasses() {
		b.WriteString(cl.chars)
	}
	if b.Len() == 0 {
		return "", ErrEmptyCharset
	}
	return b.String(), nil
}

// ClassNames returns the display names of the enabled classes, e.g. "A-Z, 0-9".
func ClassNames(cfg Config) string {
	var names []string
	for _, cl := range cfg.enabledClasses() {
		names = append(names, cl.display)
	}
	return strings.Join(names, ", ")
}
