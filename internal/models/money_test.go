package models

import "testing"

func TestCentsMajor(t *testing.T) {
	tests := []struct {
		cents Cents
		want  float64
	}{
		{0, 0},
		{1, 0.01},
		{100, 1},
		{59700, 597},
		{99900, 999},
		{15000, 150},
		{-2500, -25},
	}
	for _, tt := range tests {
		if got := tt.cents.Major(); got != tt.want {
			t.Errorf("Cents(%d).Major() = %v, want %v", tt.cents, got, tt.want)
		}
	}
}

func TestCentsString(t *testing.T) {
	tests := []struct {
		cents Cents
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{99900, "999.00"},
		{80001, "800.01"},
	}
	for _, tt := range tests {
		if got := tt.cents.String(); got != tt.want {
			t.Errorf("Cents(%d).String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
