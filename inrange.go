package zcurve

import "math/big"

// InRange reports whether the point a code decodes to lies inside the
// rectangle bounded by the points of rmin and rmax. The numeric
// interval [rmin, rmax] is a necessary condition only: the curve's
// locality is imperfect, so some codes inside the interval decode to
// points outside the rectangle. Those are exactly the codes a scan
// skips with BigMin/LitMax, and membership is decided the same way,
// without decoding: a code in the interval is inside the rectangle
// exactly when it is its own nearest valid neighbour in both
// directions, LitMax(BigMin(code)) == code.
func InRange(code, rmin, rmax *big.Int, dims int) (bool, error) {
	totalBits, err := checkRange(code, rmin, rmax, dims)
	if err != nil {
		return false, err
	}
	if code.Cmp(rmin) < 0 || code.Cmp(rmax) > 0 {
		return false, nil
	}
	// the corner codes decode to the rectangle's corners
	if code.Cmp(rmin) == 0 || code.Cmp(rmax) == 0 {
		return true, nil
	}
	next := bigMin(code, rmin, rmax, dims, totalBits)
	return code.Cmp(litMax(next, rmin, rmax, dims, totalBits)) == 0, nil
}
