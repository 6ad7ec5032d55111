package accel

import (
	"fmt"

	"github.com/ajroetker/go-litex-lgr/lgr/fixed"
)

// SelfTest runs a lane against known vectors: inputs 1..Width against
// all-ones weights must sum to Width*(Width+1)/2, and all-zero weights
// must annihilate everything. A failure means the unit (or the bus in
// front of it) is wired wrong.
func SelfTest(l Lane) error {
	w := l.Width()
	frac := l.FracBits()

	inputs := make([]int32, w)
	ones := make([]int32, w)
	for i := 0; i < w; i++ {
		inputs[i] = fixed.Encode(float64(i+1), frac)
		ones[i] = fixed.Encode(1, frac)
	}
	want := fixed.Encode(float64(w*(w+1)/2), frac)

	got, err := l.Compute(inputs, ones)
	if err != nil {
		return fmt.Errorf("accel: self test compute: %w", err)
	}
	if got != want {
		return fmt.Errorf("accel: self test dot = %d, want %d", got, want)
	}

	got, err = l.Compute(inputs, make([]int32, w))
	if err != nil {
		return fmt.Errorf("accel: self test zero-weight compute: %w", err)
	}
	if got != 0 {
		return fmt.Errorf("accel: self test zero-weight dot = %d, want 0", got)
	}
	return nil
}
