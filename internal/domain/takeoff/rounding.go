package takeoff

import "math"

// snap absorbs binary float noise (60 × 1.10 = 66.00000000000001) before
// taking the ceiling, so exact products are not bumped by one cent.
const snap = 1e6

// RoundUp rounds v up to two decimals: 12.341 → 12.35, 12.340 → 12.34.
func RoundUp(v float64) float64 {
	cents := math.Round(v*100*snap) / snap
	return math.Ceil(cents) / 100
}

// countULPs is how far, in units in the last place, a quotient may sit
// above a whole number and still count as that number.
const countULPs = 4

// ceilCount is the whole-unit ceiling used for stud and column counts.
// Only rounding error of the division itself is absorbed: 100.0000004
// still needs 101 pieces.
func ceilCount(v float64) float64 {
	r := math.Round(v)
	if v > r && v-r <= countULPs*(math.Nextafter(r, math.Inf(1))-r) {
		return r
	}
	return math.Ceil(v)
}
