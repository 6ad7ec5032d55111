package accel

import (
	"fmt"

	"github.com/ajroetker/go-litex-lgr/lgr"
	"github.com/ajroetker/go-litex-lgr/lgr/fixed"
)

// Software is the CPU fallback Lane. It performs the same truncating
// multiply-accumulate as the gateware (fixed.Dot), so for identical
// operands its results are bit-identical to either hardware variant.
type Software struct {
	width int
	frac  uint
}

// NewSoftware returns a software lane of the given width and fixed-point
// format. Panics if width is not positive; that is a construction bug,
// not a runtime condition.
func NewSoftware(width int, fracBits uint) *Software {
	if width <= 0 {
		panic("accel: lane width must be positive")
	}
	return &Software{width: width, frac: fracBits}
}

// Name returns "software".
func (s *Software) Name() string { return lgr.BackendSoftware.String() }

// Width returns the configured lane count.
func (s *Software) Width() int { return s.width }

// FracBits returns the configured fixed-point format.
func (s *Software) FracBits() uint { return s.frac }

// Compute multiplies and accumulates one chunk. Operands longer than the
// lane width are clamped, matching the permissive hardware driver.
func (s *Software) Compute(inputs, weights []int32) (int32, error) {
	if inputs == nil || weights == nil {
		return 0, fmt.Errorf("accel: software compute: %w", lgr.ErrInvalidParameter)
	}
	if len(inputs) > s.width {
		inputs = inputs[:s.width]
	}
	if len(weights) > s.width {
		weights = weights[:s.width]
	}
	return fixed.Dot(inputs, weights, s.frac), nil
}
