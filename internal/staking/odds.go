// Package staking maps edges and confidence buckets to capped,
// fractional-Kelly stake recommendations.
package staking

// DecimalOdds converts American odds to decimal payout odds.
// -110 -> 1.909..., +150 -> 2.5. Zero is treated as the standard -110 juice.
func DecimalOdds(american int) float64 {
	switch {
	case american == 0:
		return DecimalOdds(-110)
	case american > 0:
		return 1.0 + float64(american)/100.0
	default:
		return 1.0 + 100.0/float64(-american)
	}
}

// KellyFraction computes the raw Kelly stake fraction for win probability p
// at decimal odds. b is the net payout (decimal odds - 1). Returns 0 when
// the inputs carry no positive expectation.
func KellyFraction(p, decimalOdds float64) float64 {
	if p <= 0 || p >= 1 || decimalOdds <= 1 {
		return 0
	}
	b := decimalOdds - 1.0
	f := (p*b - (1.0 - p)) / b
	if f < 0 {
		return 0
	}
	return f
}
