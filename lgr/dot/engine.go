// Package dot computes dot products and affine predictions over vectors
// of any length by chunking them through a fixed-width accelerator lane.
// This package corresponds to the high-level half of the C driver stack:
// the per-chunk primitive lives behind accel.Lane, and everything here is
// the bookkeeping that feeds it.
package dot

import (
	"fmt"

	"github.com/ajroetker/go-litex-lgr/lgr"
	"github.com/ajroetker/go-litex-lgr/lgr/accel"
	"github.com/ajroetker/go-litex-lgr/lgr/fixed"
)

// Engine partitions arbitrarily long vectors into lane-width chunks,
// accumulates the per-chunk results at 64 bits, and zero-pads the final
// short chunk. The 64-bit accumulator gives 32 bits of headroom over the
// chunk results, which does not overflow for any realistic chunk count.
//
// An Engine is not safe for concurrent use: it owns scratch buffers for
// the padded tail chunk, and the lane underneath it models an exclusive
// hardware resource.
type Engine struct {
	lane accel.Lane

	// scratch for the zero-padded tail chunk
	padIn, padW []int32
}

// New returns an engine over the given per-chunk lane.
func New(lane accel.Lane) *Engine {
	w := lane.Width()
	return &Engine{
		lane:  lane,
		padIn: make([]int32, w),
		padW:  make([]int32, w),
	}
}

// Lane returns the per-chunk primitive the engine drives.
func (e *Engine) Lane() accel.Lane { return e.lane }

// DotFixed computes Σ inputs[i]*weights[i] over pre-encoded fixed-point
// operands, returning the raw 64-bit accumulator. The number of lane
// invocations is ceil(len/width): full chunks straight from the operand
// slices, plus one zero-padded chunk for any remainder. A zero-length
// input performs no lane work and returns 0.
//
// Fails with ErrInvalidParameter when either operand is absent or the
// lengths disagree; propagates ErrBusy and ErrTimeout from the lane.
func (e *Engine) DotFixed(inputs, weights []int32) (int64, error) {
	if inputs == nil || weights == nil {
		return 0, fmt.Errorf("dot: absent operands: %w", lgr.ErrInvalidParameter)
	}
	if len(inputs) != len(weights) {
		return 0, fmt.Errorf("dot: length mismatch (%d inputs, %d weights): %w",
			len(inputs), len(weights), lgr.ErrInvalidParameter)
	}

	width := e.lane.Width()
	var acc int64

	off := 0
	for ; off+width <= len(inputs); off += width {
		r, err := e.lane.Compute(inputs[off:off+width], weights[off:off+width])
		if err != nil {
			return 0, err
		}
		acc += int64(r)
	}

	if rem := len(inputs) - off; rem > 0 {
		copy(e.padIn, inputs[off:])
		copy(e.padW, weights[off:])
		clear(e.padIn[rem:])
		clear(e.padW[rem:])
		r, err := e.lane.Compute(e.padIn, e.padW)
		if err != nil {
			return 0, err
		}
		acc += int64(r)
	}

	return acc, nil
}

// Dot computes the dot product of real-valued vectors. Operands are
// encoded to the lane's fixed-point format, accumulated chunk by chunk,
// and the accumulator decoded back to a real number.
func (e *Engine) Dot(inputs, weights []float64) (float64, error) {
	frac := e.lane.FracBits()
	in, w, err := encodePair(inputs, weights, func(x float64) int32 {
		return fixed.Encode(x, frac)
	})
	if err != nil {
		return 0, err
	}
	acc, err := e.DotFixed(in, w)
	if err != nil {
		return 0, err
	}
	return fixed.DecodeWide(acc, frac), nil
}

// DotScaled computes a dot product of real-valued vectors encoded with an
// arbitrary integer scale factor, as the wide combinatorial unit expects.
// The raw accumulator is returned: each product carries scale², and how
// to renormalize is the caller's choice. The lane should be a raw-integer
// one (FracBits 0). Fails with ErrInvalidParameter on a zero scale.
func (e *Engine) DotScaled(inputs, weights []float64, scale int32) (int64, error) {
	if scale == 0 {
		return 0, fmt.Errorf("dot: zero scale factor: %w", lgr.ErrInvalidParameter)
	}
	in, w, err := encodePair(inputs, weights, func(x float64) int32 {
		return fixed.EncodeScale(x, scale)
	})
	if err != nil {
		return 0, err
	}
	return e.DotFixed(in, w)
}

// encodePair validates and encodes both operand vectors. The nil and
// length checks run here so the float paths report bad arguments before
// any encoding work.
func encodePair(inputs, weights []float64, enc func(float64) int32) ([]int32, []int32, error) {
	if inputs == nil || weights == nil {
		return nil, nil, fmt.Errorf("dot: absent operands: %w", lgr.ErrInvalidParameter)
	}
	if len(inputs) != len(weights) {
		return nil, nil, fmt.Errorf("dot: length mismatch (%d inputs, %d weights): %w",
			len(inputs), len(weights), lgr.ErrInvalidParameter)
	}
	in := make([]int32, len(inputs))
	w := make([]int32, len(weights))
	for i := range inputs {
		in[i] = enc(inputs[i])
		w[i] = enc(weights[i])
	}
	return in, w, nil
}
