package common

import "testing"

func TestRoundTo(t *testing.T) {
	cases := []struct {
		in     float64
		places int
		want   float64
	}{
		{5, 2, 5},
		{1.234, 2, 1.23},
		{1.236, 2, 1.24},
		{-1.236, 2, -1.24},
		{0.0046296, 2, 0},
		{2.675, 2, 2.67},
		{1.005, 2, 1},
		{0.125, 2, 0.12},
		{12.5, 0, 12},
		{13.5, 0, 14},
	}

	for _, tc := range cases {
		if got := RoundTo(tc.in, tc.places); got != tc.want {
			t.Errorf("RoundTo(%v, %d) = %v, want %v", tc.in, tc.places, got, tc.want)
		}
	}
}
