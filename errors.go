package zcurve

import "errors"

var (
	// ErrOutOfRange reports a negative coordinate or code, or a
	// coordinate wider than an explicitly supplied bits-per-dimension.
	ErrOutOfRange = errors.New("zcurve: value out of range")

	// ErrInvalidDimension reports a dimensionality below one, an empty
	// point, or a bits-per-dimension below one.
	ErrInvalidDimension = errors.New("zcurve: invalid dimensionality")

	// ErrInvalidRange reports range bounds out of order, or a probe
	// code wider than the range it is pruned against.
	ErrInvalidRange = errors.New("zcurve: invalid code range")
)
