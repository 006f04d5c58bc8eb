package zcurve

import (
	"fmt"
	"math/big"
)

// Interlace maps a multi dimensional point onto its one dimensional
// Z-order code. The dimensionality is the number of coordinates given
// and the width is inferred as the bit length of the widest coordinate,
// minimum one, so Interlace(0, 0) is the single-bit-per-dimension code
// 0, not an empty value. The inference is a scan over all coordinates;
// callers that already know their width should use InterlaceFixed.
//
// Coordinates may be of any magnitude. The input values are not
// mutated and the returned code is freshly allocated.
func Interlace(point ...*big.Int) (*big.Int, error) {
	if len(point) == 0 {
		return nil, fmt.Errorf("empty point: %w", ErrInvalidDimension)
	}
	return InterlaceFixed(point, maxBitLen(point))
}

// InterlaceFixed is the fixed width encode path. It skips the width
// inference scan, which is worth reaching for when many points of a
// known width are encoded in a loop; see the package benchmarks. A
// coordinate needing more than bitsPerDim bits is an error, never a
// truncation, so both paths produce identical codes for identical
// (point, width) pairs.
func InterlaceFixed(point []*big.Int, bitsPerDim int) (*big.Int, error) {
	if len(point) == 0 {
		return nil, fmt.Errorf("empty point: %w", ErrInvalidDimension)
	}
	if bitsPerDim < 1 {
		return nil, fmt.Errorf("bits per dimension %d: %w", bitsPerDim, ErrInvalidDimension)
	}
	dims := len(point)
	code := new(big.Int)
	for d, v := range point {
		if v.Sign() < 0 {
			return nil, fmt.Errorf("dimension %d is negative: %w", d, ErrOutOfRange)
		}
		n := v.BitLen()
		if n > bitsPerDim {
			return nil, fmt.Errorf(
				"dimension %d needs %d bits, %d allowed: %w", d, n, bitsPerDim, ErrOutOfRange)
		}
		// copy bit b of dimension d to code bit b*dims+d; bits above the
		// coordinate's own length are zero and need no visit
		for b := 0; b < n; b++ {
			if v.Bit(b) == 1 {
				code.SetBit(code, b*dims+d, 1)
			}
		}
	}
	return code, nil
}
