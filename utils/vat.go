package utils

import "math"

// Round2 rounds half-up to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeriveTotals computes the VAT amount and the final payable total for a
// discounted price. Both outputs are rounded independently, so
// vatAmount+discountedPrice may differ from finalTotal by ±0.01.
//
// A nil vatPercentage means VAT is not configured for the booking; the
// caller must leave the booking unmodified (ok=false).
func DeriveTotals(discountedPrice float64, vatPercentage *float64) (vatAmount, finalTotal float64, ok bool) {
	if vatPercentage == nil {
		return 0, 0, false
	}
	vatAmount = Round2(discountedPrice * *vatPercentage / 100)
	finalTotal = Round2(discountedPrice * (1 + *vatPercentage/100))
	return vatAmount, finalTotal, true
}
