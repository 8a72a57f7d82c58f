// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/solar-sizing/pkg/constants"
)

// Round rounds a value to constants.DisplayDecimals places, the precision
// used for power, area and payback values shown to users.
func Round(val float64) float64 {
	return RoundTo(val, constants.DisplayDecimals)
}

// RoundTo rounds a value to the given number of decimal places, half away
// from zero.
func RoundTo(val float64, places int) float64 {
	if places <= 0 {
		return math.Round(val)
	}
	scale := math.Pow(10, float64(places))
	return math.Round(val*scale) / scale
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
