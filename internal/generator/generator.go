// Package generator builds random passwords from selectable character classes
// and estimates how strong a password is.
//
// Every function is a pure computation over its arguments. The only source
// of non-determinism is the RandomSource handed to Generate.
package generator

import (
	"fmt"
)

const (
	MinLength     = 4
	MaxLength     = 50
	DefaultLength = 16
)

// Config selects the password length and the enabled character classes.
type Config struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool

	// EachClass seeds one character from every enabled class before filling
	// the rest, then shuffles. Off means plain uniform sampling.
	EachClass bool
}

// DefaultConfig returns 16 characters with all classes enabled.
func DefaultConfig() Config {
	return Config{
		Length:  DefaultLength,
		Upper:   true,
		Lower:   true,
		Digits:  true,
		Symbols: true,
	}
}

// Validate checks the length range and that at least one class is enabled.
func (c Config) Validate() error {
	if c.Length < MinLength || c.Length > MaxLength {
		return &LengthError{Length: c.Length}
	}
	if len(c.enabledClasses()) == 0 {
		return ErrEmptyCharset
	}
	return nil
}

// Generate draws cfg.Length characters from the composed charset using src.
// Errors from ComposeCharset are returned unchanged; errors from src are
// wrapped.
func Generate(cfg Config, src RandomSource) (string, error) {
	if cfg.Length < MinLength || cfg.Length > MaxLength {
		return "", &LengthError{Length: cfg.Length}
	}

	charset, err := ComposeCharset(cfg)
	if err != nil {
		return "", err
	}

	result := make([]byte, cfg.Length)
	filled := 0

	if cfg.EachClass {
		for _, cl := range cfg.enabledClasses() {
			ch, err := pick(cl.chars, src)
			if err != nil {
				return "", err
			}
			result[filled] = ch
			filled++
		}
	}

	for i := filled; i < cfg.Length; i++ {
		ch, err := pick(charset, src)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if cfg.EachClass {
		if err := shuffle(result, src); err != nil {
			return "", err
		}
	}

	return string(result), nil
}

func pick(charset string, src RandomSource) (byte, error) {
	n, err := src.Intn(len(charset))
	if err != nil {
		return 0, fmt.Errorf("drawing character: %w", err)
	}
	if n < 0 || n >= len(charset) {
		return 0, fmt.Errorf("drawing character: source returned %d outside [0, %d)", n, len(charset))
	}
	return charset[n], nil
}

// shuffle is a Fisher-Yates shuffle driven by src.
func shuffle(data []byte, src RandomSource) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return fmt.Errorf("shuffling: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
