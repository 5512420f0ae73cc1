package mathutil

import (
	"math"
	"testing"
)

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		expected float64
	}{
		{
			name:     "Normal division",
			a:        450000.0,
			b:        150000.0,
			expected: 3.0,
		},
		{
			name:     "Zero denominator resolves to zero",
			a:        250000.0,
			b:        0.0,
			expected: 0.0,
		},
		{
			name:     "Zero numerator",
			a:        0.0,
			b:        180000.0,
			expected: 0.0,
		},
		{
			name:     "Negative numerator",
			a:        -50000.0,
			b:        100000.0,
			expected: -0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeDiv(tt.a, tt.b)
			if got != tt.expected {
				t.Errorf("SafeDiv(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("SafeDiv(%v, %v) produced non-finite value %v", tt.a, tt.b, got)
			}
		})
	}
}

func TestRound(t *testing.T) {
	if got := Round(1.005 * 100); got != 100.5 {
		t.Errorf("Round() = %v, expected 100.5", got)
	}
	if got := Round(33075.000000001); got != 33075.0 {
		t.Errorf("Round() = %v, expected 33075.0", got)
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.009, 0.01) {
		t.Error("WithinTolerance() expected true for values within tolerance")
	}
	if WithinTolerance(100.0, 100.02, 0.01) {
		t.Error("WithinTolerance() expected false for values outside tolerance")
	}
}

func TestSignChecks(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero() expected true within currency tolerance")
	}
	if !IsPositive(0.02) {
		t.Error("IsPositive() expected true above tolerance")
	}
	if !IsNegative(-0.02) {
		t.Error("IsNegative() expected true below negative tolerance")
	}
}
