package generator

import (
	"errors"
	"testing"
)

func TestComposeCharset(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "all", cfg: Config{Upper: true, Lower: true, Digits: true, Symbols: true}, want: UpperChars + LowerChars + DigitChars + SymbolChars},
		{name: "upper", cfg: Config{Upper: true}, want: UpperChars},
		{name: "lower and symbols", cfg: Config{Lower: true, Symbols: true}, want: LowerChars + SymbolChars},
		{name: "digits and upper keep fixed order", cfg: Config{Digits: true, Upper: true}, want: UpperChars + DigitChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComposeCharset(tt.cfg)
			if err != nil {
				t.Fatalf("ComposeCharset() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ComposeCharset() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComposeCharsetEmpty(t *testing.T) {
	got, err := ComposeCharset(Config{Length: 16})
	if !errors.Is(err, ErrEmptyCharset) {
		t.Errorf("ComposeCharset() error = %v, want %v", err, ErrEmptyCharset)
	}
	if got != "" {
		t.Errorf("ComposeCharset() = %q, want empty", got)
	}
}

func TestAlphabetSizes(t *testing.T) {
	if len(UpperChars) != 26 || len(LowerChars) != 26 || len(DigitChars) != 10 {
		t.Errorf("unexpected alphabet sizes: %d/%d/%d", len(UpperChars), len(LowerChars), len(DigitChars))
	}
	seen := make(map[rune]bool)
	for _, r := range UpperChars + LowerChars + DigitChars + SymbolChars {
		if seen[r] {
			t.Errorf("character %q appears in more than one class", string(r))
		}
		seen[r] = true
	}
}

func TestClassNames(t *testing.T) {
	if got := ClassNames(DefaultConfig()); got != "A-Z, a-z, 0-9, !@#$" {
		t.Errorf("ClassNames() = %q", got)
	}
	if got := ClassNames(Config{Digits: true}); got != "0-9" {
		t.Errorf("ClassNames() = %q, want %q", got, "0-9")
	}
	if got := ClassNames(Config{}); got != "" {
		t.Errorf("ClassNames() = %q, want empty", got)
	}
}
