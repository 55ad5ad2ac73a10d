package recon

import "math"

// Round rounds to the nearest integer, halves away from zero. Used for
// percentages and any derived amount that must stay integral.
func Round(x float64) int64 {
	return int64(math.Round(x))
}

// Ratio returns paid as an integer percentage of amount. Amounts of zero or
// below yield 0 rather than an error; overpayment yields values above 100.
func Ratio(paid, amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	return Round(float64(paid) / float64(amount) * 100)
}
