package zcurve

import (
	"fmt"
	"math/big"
)

// Deinterlace recovers the multi dimensional point a code was
// interlaced from. The caller supplies the dimensionality; the width
// falls out of the code's own bit length. Dimensions whose gathered
// coordinate is zero are returned as zero values, never omitted, so the
// result always has exactly dims entries in original dimension order. A
// code of zero decodes to a point of dims zeros.
func Deinterlace(code *big.Int, dims int) ([]*big.Int, error) {
	if dims < 1 {
		return nil, fmt.Errorf("dims %d: %w", dims, ErrInvalidDimension)
	}
	if code.Sign() < 0 {
		return nil, fmt.Errorf("negative code: %w", ErrOutOfRange)
	}
	n := code.BitLen()
	point := make([]*big.Int, dims)
	for d := range point {
		v := new(big.Int)
		// gather code bits d, d+dims, d+2*dims, ... into coordinate bits
		// 0, 1, 2, ...
		for b, i := 0, d; i < n; b, i = b+1, i+dims {
			if code.Bit(i) == 1 {
				v.SetBit(v, b, 1)
			}
		}
		point[d] = v
	}
	return point, nil
}
