package accel

import "github.com/ajroetker/go-litex-lgr/lgr/csr"

// Adder drives the trivial two-operand adder peripheral. It exists for
// bus bring-up: if Add returns the wrong sum, nothing else on the CSR
// window is worth debugging yet.
type Adder struct {
	bus csr.Bus
	m   csr.AdderMap
}

// NewAdder returns a driver for the adder behind m.
func NewAdder(bus csr.Bus, m csr.AdderMap) *Adder {
	return &Adder{bus: bus, m: m}
}

// Add writes both operands and reads back their 32-bit wrapping sum. The
// adder is combinatorial; the result is valid immediately.
func (a *Adder) Add(x, y uint32) uint32 {
	a.bus.Write32(a.m.OperandA(), x)
	a.bus.Write32(a.m.OperandB(), y)
	return a.bus.Read32(a.m.Result())
}
