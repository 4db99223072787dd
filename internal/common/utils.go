package common

import "strconv"

// RoundTo rounds v to the given number of decimal places. Rounding works on
// the exact binary value of v, so 2.675 (stored as 2.67499...) becomes 2.67
// and exact halves go to the even digit.
func RoundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
