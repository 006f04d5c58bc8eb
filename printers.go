package zcurve

import (
	"math/big"
	"strings"
)

// debug utilities

// formatCode renders a code's interleaved bits most significant first,
// grouped per round, eg "010.001.000.010.000" for dims=3. Handy in test
// failure output for seeing which dimension a divergence belongs to.
func formatCode(code *big.Int, dims int) string {
	totalBits := alignedBits(code.BitLen(), dims)

	var sb strings.Builder
	for i := totalBits - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(code.Bit(i)))
		if i > 0 && i%dims == 0 {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
