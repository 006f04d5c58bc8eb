package zcurve

/*

# Why Z-order codes

Mapping a D-dimensional point onto a single integer by interleaving the
binary digits of its coordinates produces a Morton code (a point on the
Z-order space filling curve). Sorting points by their codes gives a one
dimensional ordering that approximately preserves spatial locality, which
makes ordinary ordered containers (B-trees, sorted files, LSM stores)
usable as multi-dimensional indexes without any dedicated spatial
structure: a rectangle query becomes a scan of a single code interval.

The catch is that the curve's locality is imperfect. The interval
[rmin, rmax] spanned by the codes of a rectangle's corners contains every
code whose point is inside the rectangle, but also codes whose points are
not. A naive scan visits all of them. Tropf & Herzog showed that from any
such "dead" code the scan can jump directly to the next code whose point
can still be inside the rectangle (BIGMIN), and symmetrically backwards
(LITMAX), by examining only the interleaved bits of the probe and the two
corner codes. The dead stretches can be exponentially long in the code
width, so the jump is the difference between a scan that works and one
that does not.

This package implements both halves:

  - the codec: Interlace / InterlaceFixed and Deinterlace, working on
    big.Int so that coordinates of any magnitude round-trip exactly, and
  - the pruner: BigMin, LitMax and InRange, operating directly on raw
    codes without ever decoding a point.

# Bit addressing

Both halves must agree bit-for-bit on which bit of which dimension
occupies which position of a code, so the convention is fixed once, in
bits.go, and everything else goes through it:

	code bit i (0 = least significant) holds bit i/D of dimension i%D

Dimensions cycle fastest, significance grows slower. For D=3 the low
bits of a code read, most significant first,

	... z1 y1 x1 z0 y0 x0

and interlacing (2, 16, 8) gives

	x = 00010
	y = 10000
	z = 01000

	code = 010 . 100 . 000 . 001 . 000  (grouped z y x per round)
	     = 10248

# BIGMIN and LITMAX

The pruner never decodes. It scans the bit positions of the probe and
the two corner codes from most significant to least significant. At the
highest position where the corners still differ, the box they bound
splits into two disjoint half-boxes: the low half (shared prefix, split
bit 0, lower bits of that dimension free) and the high half (shared
prefix, split bit 1). The probe's bit at the split decides which half
the search refines into; the facing boundary of the sibling half is
recorded as the BIGMIN (or LITMAX) candidate. Because consecutive code
bits belong to different dimensions, each refinement narrows the box
along one dimension at a time. The two boundary loads are pure bit
operations within a single dimension's bit positions:

	LOAD 0111... : clear the split bit, set the dimension's lower bits
	LOAD 1000... : set the split bit, clear the dimension's lower bits

See bigmin.go and litmax.go for the full decision tables.

InRange tests rectangle membership without decoding either: a code c in
the numeric interval is inside the rectangle exactly when
LitMax(BigMin(c)) returns c, i.e. when c is its own nearest valid
neighbour in both directions.

# Sources

* H. Tropf, H. Herzog, "Multidimensional Range Search in Dynamically
  Balanced Trees", Angewandte Informatik 2/1981 pp 71-77. The origin of
  the BIGMIN/LITMAX decision tables.
* https://en.wikipedia.org/wiki/Z-order_curve - good pictures of the
  curve and of why the numeric interval over-approximates the rectangle.
* The zCurve python package, whose gmpy2 based implementation this
  package mirrors operation for operation (including the unbounded
  coordinate widths, which rule out the usual fixed-width magic-mask
  tricks).

*/
