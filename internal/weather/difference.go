package weather

import (
	"math"

	"github.com/i474232898/weather-compare/internal/common"
)

// DiffKind selects which measurement a Difference compares.
type DiffKind string

const (
	DiffTemp     DiffKind = "temp"
	DiffHumidity DiffKind = "humidity"
	DiffWind     DiffKind = "wind"
	DiffSun      DiffKind = "sun"
)

// Difference is a comparative magnitude between two cities plus its label
// (warmer/colder, greater/less, later/earlier).
type Difference struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// CalculateDifference compares a against b for the given kind.
//
// The branch tests raw > a rather than the sign of raw, so "warmer",
// "greater" and "later" are only produced when b is negative. Sun deltas are
// divided by 60 and then by 360 in both branches. The value is always
// non-negative; direction is carried by the label alone.
func CalculateDifference(a, b float64, kind DiffKind) Difference {
	raw := a - b

	var label string
	if raw > a {
		// a < b < 0 lands here with a negative delta.
		raw = math.Abs(raw)
		switch kind {
		case DiffTemp:
			label = "warmer"
		case DiffSun:
			raw = (raw / 60) / 360
			label = "later"
		default:
			label = "greater"
		}
	} else {
		if raw < 0 {
			raw = -raw
		}
		switch kind {
		case DiffTemp:
			label = "colder"
		case DiffSun:
			raw = (raw / 60) / 360
			label = "earlier"
		default:
			label = "less"
		}
	}

	return Difference{
		Value: common.RoundTo(raw, 2),
		Label: label,
	}
}
