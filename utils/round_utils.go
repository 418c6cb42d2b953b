package utils

import "math"

// Round3 rounds a value half away from zero to three decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
