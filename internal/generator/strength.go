package generator

import "unicode/utf8"

const MaxScore = 7

// Strength is the 7-point heuristic score of a password.
// The zero value means "no score" and is returned for the empty password.
type Strength struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type strengthBand struct {
	maxScore int
	label    string
	color    string
}

var strengthBands = []strengthBand{
	{maxScore: 2, label: "Weak", color: "#ef4444"},
	{maxScore: 4, label: "Medium", color: "#f59e0b"},
	{maxScore: 6, label: "Strong", color: "#10b981"},
	{maxScore: MaxScore, label: "Very strong", color: "#16a34a"},
}

// Composition records which kinds of characters a password contains.
// Other is anything outside ASCII letters and digits.
type Composition struct {
	Lower bool
	Upper bool
	Digit bool
	Other bool
}

// Inspect reports the composition of password.
func Inspect(password string) Composition {
	var c Composition
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lower = true
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= '0' && r <= '9':
			c.Digit = true
		default:
			c.Other = true
		}
	}
	return c
}

// Evaluate scores password: one point each for length >= 8, 12 and 16 and for
// containing lowercase, uppercase, a digit and any other character.
func Evaluate(password string) Strength {
	if password == "" {
		return Strength{}
	}

	score := 0
	n := utf8.RuneCountInString(password)
	for _, threshold := range []int{8, 12, 16} {
		if n >= threshold {
			score++
		}
	}

	comp := Inspect(password)
	for _, has := range []bool{comp.Lower, comp.Upper, comp.Digit, comp.Other} {
		if has {
			score++
		}
	}

	for _, band := range strengthBands {
		if score <= band.maxScore {
			return Strength{Score: score, Label: band.label, Color: band.color}
		}
	}
	return Strength{Score: score}
}
