package pricing

import (
	"fmt"
	"math"
)

// EURToDKKRate is the fixed conversion rate applied to vendor wholesale
// prices.
const EURToDKKRate = 7.5

// EURToDKKRetail converts a EUR wholesale price to a DKK charm retail
// price: convert at the fixed rate, round up to a tier boundary, then
// subtract 1.
//
//	≤ 100 DKK:  nearest 10   (78 → 80 → "79.00")
//	101–800:    nearest 50   (420 → 450 → "449.00")
//	> 800:      nearest 100  (850.5 → 900 → "899.00")
func EURToDKKRetail(eurPrice float64) string {
	dkk := eurPrice * EURToDKKRate
	var rounded float64
	switch {
	case dkk <= 100:
		rounded = math.Ceil(dkk/10) * 10
	case dkk <= 800:
		rounded = math.Ceil(dkk/50) * 50
	default:
		rounded = math.Ceil(dkk/100) * 100
	}
	return fmt.Sprintf("%.2f", rounded-1)
}

// EURToDKKCost converts a EUR wholesale price to the DKK unit cost stored
// on the inventory item, rounded to 2 decimals.
func EURToDKKCost(eurPrice float64) float64 {
	return math.Round(eurPrice*EURToDKKRate*100) / 100
}
