package zcurve

import (
	"fmt"
	"math/big"
)

// checkRange validates the shared preconditions of the pruning
// operations and returns the dims-aligned width the bit scan must cover.
// The only width inconsistency detectable from raw integers is a probe
// wider than the aligned width of the range, so that is what is
// rejected; a probe narrower than the range is just a code with leading
// zeros.
func checkRange(code, rmin, rmax *big.Int, dims int) (int, error) {
	if dims < 1 {
		return 0, fmt.Errorf("dims %d: %w", dims, ErrInvalidDimension)
	}
	if code.Sign() < 0 || rmin.Sign() < 0 || rmax.Sign() < 0 {
		return 0, fmt.Errorf("negative code: %w", ErrOutOfRange)
	}
	if rmin.Cmp(rmax) > 0 {
		return 0, fmt.Errorf("range bounds out of order: %w", ErrInvalidRange)
	}
	totalBits := alignedBits(rmax.BitLen(), dims)
	if n := code.BitLen(); n > totalBits {
		return 0, fmt.Errorf(
			"probe is %d bits wide, range covers %d: %w", n, totalBits, ErrInvalidRange)
	}
	return totalBits, nil
}
