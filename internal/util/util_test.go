package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "seconds only", duration: 45 * time.Second, expected: "45s"},
		{name: "zero", duration: 0, expected: "0s"},
		{name: "minutes and seconds", duration: 5*time.Minute + 10*time.Second, expected: "5m10s"},
		{name: "rounds sub-second", duration: 4*time.Second + 600*time.Millisecond, expected: "5s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "drops seconds above an hour", duration: 2*time.Hour + 5*time.Minute + 30*time.Second, expected: "2h5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%v) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		meters   float64
		expected string
	}{
		{name: "zero", meters: 0, expected: "0 m"},
		{name: "under a kilometer", meters: 850.4, expected: "850 m"},
		{name: "exact kilometer", meters: 1000, expected: "1.0 km"},
		{name: "fractional kilometers", meters: 2345, expected: "2.3 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDistance(tt.meters); got != tt.expected {
				t.Fatalf("FormatDistance(%v) = %s, want %s", tt.meters, got, tt.expected)
			}
		})
	}
}
