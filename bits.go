package zcurve

import "math/big"

// The bit addressing convention lives here and only here: code bit i
// (0 = LSB) holds bit i/dims of dimension i%dims. The codec, the pruner
// and the printers all go through these helpers so they cannot disagree
// on the mapping.

// alignedBits rounds a raw bit length up to the next multiple of dims,
// minimum one full round, so a scan over the result visits every
// dimension the same number of times.
func alignedBits(bits, dims int) int {
	if bits == 0 {
		return dims
	}
	if r := bits % dims; r != 0 {
		bits += dims - r
	}
	return bits
}

// maxBitLen returns the bit length of the widest coordinate, minimum 1,
// so an all zero point still gets one bit per dimension.
func maxBitLen(point []*big.Int) int {
	widest := 1
	for _, v := range point {
		if n := v.BitLen(); n > widest {
			widest = n
		}
	}
	return widest
}

// fillDimBelow is the LOAD("0111...") step of the Tropf & Herzog
// tables: within the dimension owning bit i, set every bit below i and
// clear bit i itself. Bits belonging to other dimensions are untouched.
func fillDimBelow(x *big.Int, i, dims int) {
	for j := i % dims; j < i; j += dims {
		x.SetBit(x, j, 1)
	}
	x.SetBit(x, i, 0)
}

// clearDimBelow is the LOAD("1000...") step: within the dimension
// owning bit i, clear every bit below i and set bit i itself.
func clearDimBelow(x *big.Int, i, dims int) {
	for j := i % dims; j < i; j += dims {
		x.SetBit(x, j, 0)
	}
	x.SetBit(x, i, 1)
}
