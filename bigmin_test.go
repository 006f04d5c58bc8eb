package zcurve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigMin(t *testing.T) {
	tests := []struct {
		name       string
		code       *big.Int
		rmin, rmax *big.Int
		dims       int
		want       *big.Int
	}{
		{"adjacent valid code", bi(30), rectMin2D, rectMax2D, 2, bi(31)},
		{"jump over the dead stretch", bi(58), rectMin2D, rectMax2D, 2, bi(74)},
		{"valid probe advances past an invalid neighbour", bi(49), rectMin2D, rectMax2D, 2, bi(51)},
		{"probe below the range lands on its low corner", bi(0), rectMin2D, rectMax2D, 2, bi(27)},
		{"low corner advances inside", bi(27), rectMin2D, rectMax2D, 2, bi(30)},
		{"degenerate range returns its only code", bi(7), bi(5), bi(5), 3, bi(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BigMin(tt.code, tt.rmin, tt.rmax, tt.dims)
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(tt.want),
				"BigMin(%v) = %v (%s), want %v", tt.code, got, formatCode(got, tt.dims), tt.want)
		})
	}
}

func TestBigMinErrors(t *testing.T) {
	_, err := BigMin(bi(30), rectMax2D, rectMin2D, 2)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = BigMin(bi(30), rectMin2D, rectMax2D, 0)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = BigMin(bi(-1), rectMin2D, rectMax2D, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// a probe wider than the dims-aligned range width was built with a
	// different dims or width and cannot be pruned against this range
	_, err = BigMin(bi(1024), bi(1), bi(3), 2)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

// TestBigMinExhaustive2D checks every probe of the worked rectangle
// against ground truth computed by decoding: BigMin must land on the
// first code after the probe whose point is inside the rectangle.
func TestBigMinExhaustive2D(t *testing.T) {
	exhaustBigMin(t, rectMin2D, rectMax2D, 2)
}

// TestBigMinExhaustive3D does the same over a three dimensional box, so
// the dimension cycling of the splits is exercised past two dims.
func TestBigMinExhaustive3D(t *testing.T) {
	rmin, err := Interlace(pt(1, 2, 0)...)
	require.NoError(t, err)
	rmax, err := Interlace(pt(5, 3, 2)...)
	require.NoError(t, err)
	exhaustBigMin(t, rmin, rmax, 3)
}

func exhaustBigMin(t *testing.T, rmin, rmax *big.Int, dims int) {
	t.Helper()

	one := big.NewInt(1)
	for probe := new(big.Int).Set(rmin); probe.Cmp(rmax) <= 0; probe.Add(probe, one) {
		// ground truth: the first code after the probe inside the rectangle
		want := new(big.Int)
		for k := new(big.Int).Add(probe, one); k.Cmp(rmax) <= 0; k.Add(k, one) {
			if inRect(k, rmin, rmax, dims) {
				want.Set(k)
				break
			}
		}
		if want.Sign() == 0 {
			continue // nothing valid after the probe
		}

		got, err := BigMin(probe, rmin, rmax, dims)
		require.NoError(t, err)
		require.Zero(t, got.Cmp(want),
			"BigMin(%v [%s]) = %v, want %v", probe, formatCode(probe, dims), got, want)
	}
}
