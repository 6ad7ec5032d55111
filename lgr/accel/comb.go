package accel

import (
	"fmt"

	"github.com/ajroetker/go-litex-lgr/lgr"
	"github.com/ajroetker/go-litex-lgr/lgr/csr"
)

// Comb drives the combinatorial accelerator variant: per-lane INPUT and
// WEIGHT registers and a RESULT that is valid as soon as the operands are
// written. There is no handshake and nothing to poll; the unit is in an
// implicit Ready state at all times.
//
// This is the permissive driver: operand slices longer than the lane
// width are silently clamped.
type Comb struct {
	bus  csr.Bus
	m    csr.CombMap
	frac uint
}

// NewComb returns a driver for the combinatorial unit behind m.
func NewComb(bus csr.Bus, m csr.CombMap, fracBits uint) *Comb {
	if m.Lanes <= 0 {
		panic("accel: lane width must be positive")
	}
	return &Comb{bus: bus, m: m, frac: fracBits}
}

// Name returns "comb".
func (c *Comb) Name() string { return lgr.BackendComb.String() }

// Width returns the unit's lane count.
func (c *Comb) Width() int { return c.m.Lanes }

// FracBits returns the unit's fixed-point format.
func (c *Comb) FracBits() uint { return c.frac }

// Reset clears all input and weight storage to zero. Always succeeds;
// the unit signals no failures at this layer.
func (c *Comb) Reset() {
	for i := 0; i < c.m.Lanes; i++ {
		c.bus.Write32(c.m.Input(i), 0)
		c.bus.Write32(c.m.Weight(i), 0)
	}
}

// SetInputs writes values to the input lanes, zero-padding lanes beyond
// len(values). Values beyond the lane width are dropped.
func (c *Comb) SetInputs(values []int32) error {
	if values == nil {
		return fmt.Errorf("accel: comb set inputs: %w", lgr.ErrInvalidParameter)
	}
	c.writeBank(c.m.Input, values)
	return nil
}

// SetWeights writes values to the weight lanes, symmetric to SetInputs.
func (c *Comb) SetWeights(values []int32) error {
	if values == nil {
		return fmt.Errorf("accel: comb set weights: %w", lgr.ErrInvalidParameter)
	}
	c.writeBank(c.m.Weight, values)
	return nil
}

func (c *Comb) writeBank(slot func(int) uint32, values []int32) {
	n := min(len(values), c.m.Lanes)
	for i := 0; i < n; i++ {
		c.bus.Write32(slot(i), uint32(values[i]))
	}
	for i := n; i < c.m.Lanes; i++ {
		c.bus.Write32(slot(i), 0)
	}
}

// ReadResult reads the result register. The combinatorial unit computes
// continuously, so the value always reflects the current operand slots.
func (c *Comb) ReadResult() int32 {
	return int32(c.bus.Read32(c.m.Result()))
}

// Compute writes one chunk of operands and reads the result back.
func (c *Comb) Compute(inputs, weights []int32) (int32, error) {
	if err := c.SetInputs(inputs); err != nil {
		return 0, err
	}
	if err := c.SetWeights(weights); err != nil {
		return 0, err
	}
	return c.ReadResult(), nil
}
