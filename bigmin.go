package zcurve

import "math/big"

// BigMin returns the next code after the probe whose decoded point can
// still lie inside the rectangle bounded by the points of rmin and
// rmax. An ordered forward scan of [rmin, rmax] that lands on a code
// outside the rectangle calls BigMin to jump over the whole dead
// stretch instead of stepping through it.
//
// A degenerate range with rmin == rmax holds a single point, so that
// value is the answer for any probe.
func BigMin(code, rmin, rmax *big.Int, dims int) (*big.Int, error) {
	totalBits, err := checkRange(code, rmin, rmax, dims)
	if err != nil {
		return nil, err
	}
	if rmin.Cmp(rmax) == 0 {
		return new(big.Int).Set(rmin), nil
	}
	return bigMin(code, rmin, rmax, dims, totalBits), nil
}

// bigMin scans the interleaved bit positions of (probe, min, max) from
// most significant to least significant, applying the BIGMIN decision
// table of Tropf & Herzog. min and max are narrowed in place on scratch
// copies as the enclosing box is bisected; each split bit belongs to a
// single dimension, so the LOAD operations in bits.go touch only that
// dimension's bits.
func bigMin(code, rmin, rmax *big.Int, dims, totalBits int) *big.Int {
	var (
		bigmin = new(big.Int)
		min    = new(big.Int).Set(rmin)
		max    = new(big.Int).Set(rmax)
	)
	for i := totalBits - 1; i >= 0; i-- {
		switch code.Bit(i)<<2 | min.Bit(i)<<1 | max.Bit(i) {
		case 0b000, 0b111:
			// probe and both bounds agree at this bit
		case 0b001:
			// the box splits here and the probe sits in the low half:
			// record the low boundary of the high half as the candidate
			// and keep refining inside the low half
			bigmin.Set(min)
			clearDimBelow(bigmin, i, dims)
			fillDimBelow(max, i, dims)
		case 0b011:
			// the probe is below the entire remaining box
			return min
		case 0b100:
			// the probe is above the entire remaining box, the recorded
			// candidate is the answer
			return bigmin
		case 0b101:
			// the probe sits in the high half, the low half holds no
			// code after the probe
			clearDimBelow(min, i, dims)
		default:
			// min bit set where max bit is clear cannot happen while
			// min <= max
			panic("zcurve: range bounds out of order")
		}
	}
	return bigmin
}
