package generator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength = errors.New("invalid password length")
	ErrEmptyCharset  = errors.New("at least one character type must be selected")
)

// LengthError reports a length outside [MinLength, MaxLength].
// It matches ErrInvalidLength with errors.Is.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("password length must be between %d and %d, got %d", MinLength, MaxLength, e.Length)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}
