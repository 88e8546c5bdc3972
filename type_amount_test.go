package club

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected Amount
		err      bool
	}{
		{"12.50", A(12.50), false},
		{"12,50", A(12.50), false},
		{" 25 ", A(25), false},
		{"-3,10", A(-3.10), false},
		{"", Amount{}, true},
		{"abc", Amount{}, true},
		{"12,50,00", Amount{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && !got.Equal(tt.expected) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAmountString(t *testing.T) {
	if got := A(12.5).String(); got != "€12.50" {
		t.Errorf("String() = %s", got)
	}
	if got := A(0).String(); got != "€0.00" {
		t.Errorf("String() = %s", got)
	}
}

func TestAmountArithmetic(t *testing.T) {
	sum := A(10.10).Add(A(0.25)).Sub(A(0.35))
	if !sum.Equal(A(10)) {
		t.Errorf("got %s, want €10.00", sum)
	}
	if got := A(1.005).Round(); !got.Equal(A(1.01)) {
		t.Errorf("Round() = %s, want €1.01", got)
	}
	if !A(-5).IsNegative() || A(-5).IsPositive() {
		t.Errorf("sign checks failed for %s", A(-5))
	}
}

// Amounts persist as plain JSON numbers, matching the historical data file.
func TestAmountJSONIsPlainNumber(t *testing.T) {
	b, err := json.Marshal(A(12.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "12.5" {
		t.Errorf("marshal = %s, want 12.5", b)
	}

	var a Amount
	if err := json.Unmarshal([]byte("99.99"), &a); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(A(99.99)) {
		t.Errorf("unmarshal = %s, want €99.99", a)
	}
}
