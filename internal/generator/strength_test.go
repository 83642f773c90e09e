package generator

import (
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		password  string
		wantScore int
		wantLabel string
		wantColor string
	}{
		{password: "abc", wantScore: 1, wantLabel: "Weak", wantColor: "#ef4444"},
		{password: "abcdefgh", wantScore: 2, wantLabel: "Weak", wantColor: "#ef4444"},
		{password: "Abcdefg1", wantScore: 4, wantLabel: "Medium", wantColor: "#f59e0b"},
		{password: "abcdefghijkl", wantScore: 3, wantLabel: "Medium", wantColor: "#f59e0b"},
		{password: "Abcdefgh1!", wantScore: 5, wantLabel: "Strong", wantColor: "#10b981"},
		{password: "Abcdefgh1!xy", wantScore: 6, wantLabel: "Strong", wantColor: "#10b981"},
		{password: "Abcdefgh1!xyzzzz", wantScore: 7, wantLabel: "Very strong", wantColor: "#16a34a"},
		{password: "ÄÖÜ", wantScore: 1, wantLabel: "Weak", wantColor: "#ef4444"},
		{password: "  ", wantScore: 1, wantLabel: "Weak", wantColor: "#ef4444"},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := Evaluate(tt.password)
			if got.Score != tt.wantScore {
				t.Errorf("Evaluate(%q).Score = %d, want %d", tt.password, got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Evaluate(%q).Label = %q, want %q", tt.password, got.Label, tt.wantLabel)
			}
			if got.Color != tt.wantColor {
				t.Errorf("Evaluate(%q).Color = %q, want %q", tt.password, got.Color, tt.wantColor)
			}
		})
	}
}

func TestEvaluateEmpty(t *testing.T) {
	got := Evaluate("")
	if got != (Strength{}) {
		t.Errorf("Evaluate(\"\") = %+v, want zero Strength", got)
	}
}

func TestEvaluateMonotonicInLength(t *testing.T) {
	// Same diversity, growing length: the score must never drop.
	base := "aA1!"
	prev := -1
	for n := 1; n <= 10; n++ {
		password := strings.Repeat(base, n)
		score := Evaluate(password).Score
		if score < prev {
			t.Errorf("Evaluate(len=%d).Score = %d, dropped below %d", len(password), score, prev)
		}
		if score < 0 || score > MaxScore {
			t.Errorf("Evaluate(len=%d).Score = %d out of range", len(password), score)
		}
		prev = score
	}
	if prev != MaxScore {
		t.Errorf("long diverse password scored %d, want %d", prev, MaxScore)
	}
}

func TestInspect(t *testing.T) {
	got := Inspect("aB3-")
	want := Composition{Lower: true, Upper: true, Digit: true, Other: true}
	if got != want {
		t.Errorf("Inspect() = %+v, want %+v", got, want)
	}
	if got := Inspect(""); got != (Composition{}) {
		t.Errorf("Inspect(\"\") = %+v, want zero", got)
	}
}
