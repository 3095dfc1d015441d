package edge

import "github.com/yourusername/gridiron-edge/internal/models"

// Key numbers are margins of victory that occur disproportionately often.
// A line crossing one of them is worth more than the raw point gap suggests;
// 3 and 7 (field goal, touchdown) are weighted highest.
var keyNumberBonus = map[int]float64{
	3:  0.5,
	6:  0.25,
	7:  0.5,
	10: 0.25,
	14: 0.25,
}

// scanKeyNumbers emits an alert for every key number the open interval
// between market and predicted spread crosses, on either side of zero
func scanKeyNumbers(marketSpread, predictedSpread float64) []models.KeyNumberAlert {
	lo, hi := marketSpread, predictedSpread
	if lo > hi {
		lo, hi = hi, lo
	}

	var alerts []models.KeyNumberAlert
	for _, n := range []int{3, 6, 7, 10, 14} {
		for _, key := range []float64{float64(n), -float64(n)} {
			if lo < key && key < hi {
				alerts = append(alerts, models.KeyNumberAlert{Number: n, Bonus: keyNumberBonus[n]})
				break
			}
		}
	}
	return alerts
}

// totalBonus sums the confidence bonuses of the crossed key numbers
func totalBonus(alerts []models.KeyNumberAlert) float64 {
	var sum float64
	for _, a := range alerts {
		sum += a.Bonus
	}
	return sum
}
