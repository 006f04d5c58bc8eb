// Package batch fans the single point zcurve operations out over a
// collection of independent points or codes. The operations are pure,
// so the fan-out needs no coordination at all: items are sharded across
// worker goroutines, output slot i always corresponds to input slot i,
// and one item's failure never disturbs another's result.
package batch

import (
	"errors"
	"fmt"
	"math/big"
	"runtime"
	"sync"

	zcurve "github.com/zevisert/zCurve"
)

// Option configures a fan-out call.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers caps the number of worker goroutines. Values below one
// leave the default of runtime.GOMAXPROCS(0) in place.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Interlace encodes every point, inferring each point's width
// independently, exactly as calling zcurve.Interlace per item would.
func Interlace(points [][]*big.Int, opts ...Option) ([]*big.Int, error) {
	return fanOut(points, opts, func(p []*big.Int) (*big.Int, error) {
		return zcurve.Interlace(p...)
	})
}

// InterlaceFixed encodes every point at the given width, the batch
// analogue of zcurve.InterlaceFixed.
func InterlaceFixed(points [][]*big.Int, bitsPerDim int, opts ...Option) ([]*big.Int, error) {
	return fanOut(points, opts, func(p []*big.Int) (*big.Int, error) {
		return zcurve.InterlaceFixed(p, bitsPerDim)
	})
}

// Deinterlace decodes every code at the given dimensionality.
func Deinterlace(codes []*big.Int, dims int, opts ...Option) ([][]*big.Int, error) {
	return fanOut(codes, opts, func(c *big.Int) ([]*big.Int, error) {
		return zcurve.Deinterlace(c, dims)
	})
}

// fanOut shards items across workers by stride, which keeps the
// partitioning allocation free and the order bookkeeping trivial. A
// failed item leaves a zero slot in the results and contributes an
// index-wrapped error to the joined error; every other item still
// completes.
func fanOut[In, Out any](items []In, opts []Option, do func(In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(items))
	if len(items) == 0 {
		return out, nil
	}

	workers := newOptions(opts).workers
	if workers > len(items) {
		workers = len(items)
	}

	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(items); i += workers {
				v, err := do(items[i])
				if err != nil {
					errs[i] = fmt.Errorf("item %d: %w", i, err)
					continue
				}
				out[i] = v
			}
		}(w)
	}
	wg.Wait()

	return out, errors.Join(errs...)
}
