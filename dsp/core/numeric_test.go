package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLinearToDB(t *testing.T) {
	tests := []struct {
		linear float64
		want   float64
	}{
		{1, 0},
		{0.5, -6.020599913279624},
		{10, 20},
		{1e-3, -60},
	}

	for _, tt := range tests {
		if got := LinearToDB(tt.linear); math.Abs(got-tt.want) > 1e-10 {
			t.Fatalf("LinearToDB(%v) = %v, want %v", tt.linear, got, tt.want)
		}
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}
