package zcurve

import "math/big"

// shared test fixtures and helpers

// the worked example from Tropf & Herzog: the rectangle spanning (5,3)
// to (10,5), whose corner codes are 27 and 102
var (
	rectMin2D = big.NewInt(27)
	rectMax2D = big.NewInt(102)
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func pt(coords ...int64) []*big.Int {
	p := make([]*big.Int, len(coords))
	for i, c := range coords {
		p[i] = big.NewInt(c)
	}
	return p
}

// inRect reports rectangle membership the slow, obviously-correct way:
// decode the code and compare every coordinate against the decoded
// corners. The pruning tests use it as ground truth.
func inRect(code *big.Int, rmin, rmax *big.Int, dims int) bool {
	p, err := Deinterlace(code, dims)
	if err != nil {
		panic(err)
	}
	lo, err := Deinterlace(rmin, dims)
	if err != nil {
		panic(err)
	}
	hi, err := Deinterlace(rmax, dims)
	if err != nil {
		panic(err)
	}
	for d := range p {
		if p[d].Cmp(lo[d]) < 0 || p[d].Cmp(hi[d]) > 0 {
			return false
		}
	}
	return true
}
