// Package weather converts measured conditions and published alerts into
// point adjustments for totals and spreads.
package weather

// Condition bands are step functions calibrated against historical scoring.
// Adjustments are negative: bad weather suppresses scoring. Wind is weighted
// more toward totals than spreads, so the spread adjustment magnitude never
// exceeds the total adjustment magnitude.

// temperatureAdjustment returns (total, spread) for a Fahrenheit reading
func temperatureAdjustment(tempF float64) (float64, float64) {
	switch {
	case tempF < 20:
		return -4.0, -1.5
	case tempF < 25:
		return -3.0, -1.0
	case tempF < 32:
		return -2.0, -0.75
	case tempF < 40:
		return -1.0, -0.5
	default:
		return 0, 0
	}
}

// windAdjustment returns (total, spread) for a wind speed in mph
func windAdjustment(mph float64) (float64, float64) {
	switch {
	case mph > 20:
		return -4.5, -1.0
	case mph > 15:
		return -3.0, -0.75
	case mph > 10:
		return -1.5, -0.5
	default:
		return 0, 0
	}
}

// precipitationAdjustment returns (total, spread) for a precipitation
// probability in [0, 1]
func precipitationAdjustment(prob float64) (float64, float64) {
	switch {
	case prob >= 0.8:
		return -3.0, -1.0
	case prob >= 0.5:
		return -2.0, -0.75
	case prob >= 0.3:
		return -1.0, -0.5
	default:
		return 0, 0
	}
}
