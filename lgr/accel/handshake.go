package accel

import (
	"fmt"
	"time"

	"github.com/ajroetker/go-litex-lgr/lgr"
	"github.com/ajroetker/go-litex-lgr/lgr/csr"
)

// DefaultTimeout bounds WaitDone when the caller passes no explicit
// timeout, matching the reference driver's one-second default.
const DefaultTimeout = time.Second

// Handshake drives the start/poll/done accelerator variant. Lifecycle:
//
//	Reset --> Ready --Start--> Busy --done--> Done --ReadResult--> Ready
//
// This is the strict driver: operand slices longer than the lane width
// are rejected with ErrInvalidParameter rather than clamped.
//
// The unit computes dot(inputs, weights) + bias in hardware. Compute
// clears the bias register first so that chunked accumulation over many
// calls sees pure per-chunk dot products; Infer programs it.
type Handshake struct {
	bus     csr.Bus
	m       csr.HandshakeMap
	frac    uint
	clock   lgr.Clock
	timeout time.Duration
}

// NewHandshake returns a driver for the handshake unit behind m. A nil
// clock falls back to the system clock; a non-positive timeout falls back
// to DefaultTimeout. The unit is reset to a known state.
func NewHandshake(bus csr.Bus, m csr.HandshakeMap, fracBits uint, clock lgr.Clock, timeout time.Duration) *Handshake {
	if m.Lanes <= 0 {
		panic("accel: lane width must be positive")
	}
	if clock == nil {
		clock = lgr.SystemClock{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	h := &Handshake{bus: bus, m: m, frac: fracBits, clock: clock, timeout: timeout}
	h.Reset()
	return h
}

// Name returns "handshake".
func (h *Handshake) Name() string { return lgr.BackendHandshake.String() }

// Width returns the unit's lane count.
func (h *Handshake) Width() int { return h.m.Lanes }

// FracBits returns the unit's fixed-point format.
func (h *Handshake) FracBits() uint { return h.frac }

// Reset pulses the reset bit, clearing operand storage and returning the
// unit to Ready. Always succeeds.
func (h *Handshake) Reset() {
	h.bus.Write32(h.m.Control(), csr.CtrlReset)
	h.bus.Write32(h.m.Control(), 0)
}

// SetInputs writes values to the input lanes, zero-padding lanes beyond
// len(values). Fails with ErrInvalidParameter if values is nil or longer
// than the lane width.
func (h *Handshake) SetInputs(values []int32) error {
	if values == nil || len(values) > h.m.Lanes {
		return fmt.Errorf("accel: handshake set inputs (count %d, lanes %d): %w",
			len(values), h.m.Lanes, lgr.ErrInvalidParameter)
	}
	h.writeBank(h.m.Input, values)
	return nil
}

// SetWeights writes values to the weight lanes, symmetric to SetInputs.
func (h *Handshake) SetWeights(values []int32) error {
	if values == nil || len(values) > h.m.Lanes {
		return fmt.Errorf("accel: handshake set weights (count %d, lanes %d): %w",
			len(values), h.m.Lanes, lgr.ErrInvalidParameter)
	}
	h.writeBank(h.m.Weight, values)
	return nil
}

func (h *Handshake) writeBank(slot func(int) uint32, values []int32) {
	for i, v := range values {
		h.bus.Write32(slot(i), uint32(v))
	}
	for i := len(values); i < h.m.Lanes; i++ {
		h.bus.Write32(slot(i), 0)
	}
}

// SetBias writes the bias register. The hardware adds it to every
// computed dot product until it is rewritten or the unit is reset.
func (h *Handshake) SetBias(v int32) {
	h.bus.Write32(h.m.Bias(), uint32(v))
}

// Start begins a computation. Fails with ErrBusy if the unit is neither
// Ready nor Done.
func (h *Handshake) Start() error {
	s := h.bus.Read32(h.m.Status())
	if s&(csr.StatusReady|csr.StatusDone) == 0 {
		return fmt.Errorf("accel: handshake start (status 0x%x): %w", s, lgr.ErrBusy)
	}
	h.bus.Write32(h.m.Control(), csr.CtrlStart)
	h.bus.Write32(h.m.Control(), 0)
	return nil
}

// IsDone polls the status register once.
func (h *Handshake) IsDone() bool {
	return h.bus.Read32(h.m.Status())&csr.StatusDone != 0
}

// WaitDone busy-polls IsDone until it reports true or timeout elapses on
// the driver's clock, then fails with ErrTimeout. This is the only
// blocking operation in the driver and it blocks by spinning, consuming
// the CPU; timeout granularity is whatever the clock resolves per spin.
func (h *Handshake) WaitDone(timeout time.Duration) error {
	budget := lgr.Timeout(h.clock, timeout)
	start := h.clock.Ticks()
	for {
		if h.IsDone() {
			return nil
		}
		if h.clock.Ticks()-start >= budget {
			return fmt.Errorf("accel: handshake wait (timeout %v): %w", timeout, lgr.ErrTimeout)
		}
	}
}

// ReadResult reads the result register. Well-defined only after IsDone
// or WaitDone reports completion; an earlier read returns a stale value.
// Reading a completed result returns the unit to Ready.
func (h *Handshake) ReadResult() int32 {
	return int32(h.bus.Read32(h.m.Result()))
}

// Compute runs one chunk through the full handshake with a zero bias.
func (h *Handshake) Compute(inputs, weights []int32) (int32, error) {
	return h.Infer(inputs, weights, 0)
}

// Infer performs a complete blocking computation: program operands and
// bias, start, wait, read. The hardware result is dot + bias.
func (h *Handshake) Infer(inputs, weights []int32, bias int32) (int32, error) {
	if err := h.SetInputs(inputs); err != nil {
		return 0, err
	}
	if err := h.SetWeights(weights); err != nil {
		return 0, err
	}
	h.SetBias(bias)
	if err := h.Start(); err != nil {
		return 0, err
	}
	if err := h.WaitDone(h.timeout); err != nil {
		return 0, err
	}
	return h.ReadResult(), nil
}
