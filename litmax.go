package zcurve

import "math/big"

// LitMax is the mirror of BigMin: the last code before the probe whose
// decoded point can still lie inside the rectangle bounded by the
// points of rmin and rmax. A backward scan uses it to jump over dead
// stretches the way a forward scan uses BigMin.
//
// A degenerate range with rmin == rmax returns that value for any
// probe.
func LitMax(code, rmin, rmax *big.Int, dims int) (*big.Int, error) {
	totalBits, err := checkRange(code, rmin, rmax, dims)
	if err != nil {
		return nil, err
	}
	if rmin.Cmp(rmax) == 0 {
		return new(big.Int).Set(rmin), nil
	}
	return litMax(code, rmin, rmax, dims, totalBits), nil
}

// litMax applies the LITMAX decision table, the resolving-downward
// mirror of bigMin. The same MSB to LSB scan and the same scratch-copy
// narrowing, with the candidate taken from the high boundary of the low
// half whenever the probe sits in the high half of a split.
func litMax(code, rmin, rmax *big.Int, dims, totalBits int) *big.Int {
	var (
		litmax = new(big.Int)
		min    = new(big.Int).Set(rmin)
		max    = new(big.Int).Set(rmax)
	)
	for i := totalBits - 1; i >= 0; i-- {
		switch code.Bit(i)<<2 | min.Bit(i)<<1 | max.Bit(i) {
		case 0b000, 0b111:
			// probe and both bounds agree at this bit
		case 0b001:
			// the box splits here and the probe sits in the low half, so
			// no candidate is recorded; confine max to the low half
			fillDimBelow(max, i, dims)
		case 0b011:
			// the probe is below the entire remaining box, the recorded
			// candidate is the answer
			return litmax
		case 0b100:
			// the probe is above the entire remaining box
			return max
		case 0b101:
			// the probe sits in the high half: record the high boundary
			// of the low half as the candidate and keep refining inside
			// the high half
			litmax.Set(max)
			fillDimBelow(litmax, i, dims)
			clearDimBelow(min, i, dims)
		default:
			// min bit set where max bit is clear cannot happen while
			// min <= max
			panic("zcurve: range bounds out of order")
		}
	}
	return litmax
}
