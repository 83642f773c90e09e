package generator

import (
	"math"
	"unicode/utf8"
)

// lengthBreakpoints are the inclusive upper bounds of each estimate bucket.
// Lengths past the last bound fall into the final label.
var lengthBreakpoints = []int{4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24}

var cardinalityLabels = []string{
	"Thousands",
	"Millions",
	"Milliards",
	"Billions",
	"Quadrillions",
	"Quintillions",
	"Sextillions",
	"Septillions",
	"Octillions",
	"Nonillions",
	"Decillions",
	"Astronomical",
}

var crackTimeLabels = []string{
	"Instantly",
	"Seconds to minutes",
	"Hours to days",
	"Days to years",
	"Years to centuries",
	"Centuries to millennia",
	"Millennia to millions of years",
	"Millions to billions of years",
	"Billions to trillions of years",
	"Trillions to quadrillions of years",
	"Quadrillions to quintillions of years",
	"Longer than the age of the universe",
}

// Cardinality sums the class sizes (26/26/10/32) of the enabled classes.
func Cardinality(cfg Config) int {
	total := 0
	for _, cl := range cfg.enabledClasses() {
		total += cl.cardinality
	}
	return total
}

// EntropyBits returns round(length * log2(Cardinality(cfg))), or 0 when no
// class is enabled.
func EntropyBits(length int, cfg Config) int {
	card := Cardinality(cfg)
	if card == 0 || length <= 0 {
		return 0
	}
	return int(math.Round(float64(length) * math.Log2(float64(card))))
}

// CardinalityClass names the rough size of the search space for length.
func CardinalityClass(length int, cfg Config) string {
	if length <= 0 || Cardinality(cfg) == 0 {
		return "0"
	}
	return stepLabel(length, cardinalityLabels)
}

// CrackTimeClass names the rough time an offline attack would take.
func CrackTimeClass(length int, cfg Config) string {
	if length <= 0 || Cardinality(cfg) == 0 {
		return crackTimeLabels[0]
	}
	return stepLabel(length, crackTimeLabels)
}

func stepLabel(length int, labels []string) string {
	for i, bound := range lengthBreakpoints {
		if length <= bound {
			return labels[i]
		}
	}
	return labels[len(labels)-1]
}

// Report bundles the strength and the informational estimates for a
// generated password.
type Report struct {
	Strength    Strength `json:"strength"`
	Length      int      `json:"length"`
	EntropyBits int      `json:"entropy_bits"`
	Cardinality string   `json:"cardinality"`
	CrackTime   string   `json:"crack_time"`
	Classes     string   `json:"classes"`
}

// Analyze evaluates password and derives the estimates from the classes that
// were enabled when it was generated.
func Analyze(password string, cfg Config) Report {
	n := utf8.RuneCountInString(password)
	return Report{
		Strength:    Evaluate(password),
		Length:      n,
		EntropyBits: EntropyBits(n, cfg),
		Cardinality: CardinalityClass(n, cfg),
		CrackTime:   CrackTimeClass(n, cfg),
		Classes:     ClassNames(cfg),
	}
}
