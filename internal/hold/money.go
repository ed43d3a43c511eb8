package hold

import "github.com/shopspring/decimal"

// MinorUnits converts a major-unit amount to integer minor units, rounding
// half away from zero. All totals are accumulated in minor units so repeated
// conversion never drifts.
func MinorUnits(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// MajorString renders minor units as a two-decimal major-unit string.
func MajorString(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
