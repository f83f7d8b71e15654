package tsl1128

import "math"

// StrengthToPercentage converts an RSSI reading in dBm to a percentage.
// Readings at or below -90 dBm map to 0, readings at or above -25 dBm map
// to 100, values between are scaled linearly.
func StrengthToPercentage(strength float64) int {
	if strength <= -90 {
		return 0
	}

	if strength >= -25 {
		return 100
	}

	return int(math.Round((strength + 90) * 100 / 65))
}
