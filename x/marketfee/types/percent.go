package types

import "cosmossdk.io/math"

const (
	// Scale is the fixed-point denominator for Percent: 10000 == 100%.
	Scale uint16 = 10000

	// OnePercent is the Percent value representing 1%.
	OnePercent uint16 = 100
)

// CalculatePercent computes floor(value * percent / Scale) using a
// math.Int (big.Int-backed) intermediate so the multiplication can never
// overflow a 64-bit accumulator, regardless of how large value or percent
// are within their documented ranges.
//
// value must be non-negative and percent must not exceed Scale; both are
// enforced call-site invariants throughout the fee engine, so a violation
// here indicates malformed chain state rather than a recoverable user error.
func CalculatePercent(value int64, percent uint16) int64 {
	if value < 0 {
		panic("marketfee: calculate_percent requires a non-negative value")
	}
	if percent > Scale {
		panic("marketfee: calculate_percent requires percent <= Scale")
	}
	if value == 0 || percent == 0 {
		return 0
	}

	widened := math.NewInt(value).MulRaw(int64(percent)).QuoRaw(int64(Scale))
	return widened.Int64()
}
