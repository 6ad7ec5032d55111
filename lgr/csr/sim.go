// Copyright 2025 go-litex-lgr Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package csr

import "github.com/ajroetker/go-litex-lgr/lgr/fixed"

// SimComb is a register-accurate model of the combinatorial dot-product
// gateware: operand writes land in per-lane slots and a read of RESULT
// computes the fixed-point dot product on the spot, exactly as the
// hardware result is valid in the same cycle as its inputs.
type SimComb struct {
	Map      CombMap
	FracBits uint

	in, w []int32
}

// NewSimComb returns a simulated combinatorial accelerator behind m.
func NewSimComb(m CombMap, fracBits uint) *SimComb {
	return &SimComb{
		Map:      m,
		FracBits: fracBits,
		in:       make([]int32, m.Lanes),
		w:        make([]int32, m.Lanes),
	}
}

// lane decodes addr into the input or weight bank. Returns the backing
// slice and lane index, or nil when addr is not an operand slot.
func (d *SimComb) lane(addr uint32) ([]int32, int) {
	n := uint32(d.Map.Lanes)
	i := wordIndex(addr - d.Map.Base)
	switch {
	case i < n:
		return d.in, int(i)
	case i < 2*n:
		return d.w, int(i - n)
	}
	return nil, 0
}

// Write32 stores an operand. Writes outside the operand slots are ignored,
// as they are by the hardware.
func (d *SimComb) Write32(addr uint32, v uint32) {
	if bank, i := d.lane(addr); bank != nil {
		bank[i] = int32(v)
	}
}

// Read32 returns operand slots as stored and computes the dot product for
// RESULT reads.
func (d *SimComb) Read32(addr uint32) uint32 {
	if addr == d.Map.Result() {
		return uint32(fixed.Dot(d.in, d.w, d.FracBits))
	}
	if bank, i := d.lane(addr); bank != nil {
		return uint32(bank[i])
	}
	return 0
}

// SimHandshake is a register-accurate model of the start/poll/done
// accelerator variant. A start latches a computation that completes after
// Latency STATUS polls, modeling the cycles the unit spends busy; the
// hardware result is dot(inputs, weights) + bias.
type SimHandshake struct {
	Map      HandshakeMap
	FracBits uint

	// Latency is the number of STATUS reads a started computation stays
	// busy before asserting done. Zero completes at start. Negative
	// never completes, which is how tests exercise the timeout path.
	Latency int

	in, w   []int32
	bias    int32
	result  int32
	pending int
	busy    bool
	done    bool
}

// NewSimHandshake returns a simulated handshake accelerator behind m.
func NewSimHandshake(m HandshakeMap, fracBits uint, latency int) *SimHandshake {
	return &SimHandshake{
		Map:      m,
		FracBits: fracBits,
		Latency:  latency,
		in:       make([]int32, m.Lanes),
		w:        make([]int32, m.Lanes),
	}
}

func (d *SimHandshake) complete() {
	d.result = fixed.Dot(d.in, d.w, d.FracBits) + d.bias
	d.busy = false
	d.done = true
}

// Write32 handles CONTROL pulses and operand stores.
func (d *SimHandshake) Write32(addr uint32, v uint32) {
	wordIndex(addr)
	switch addr {
	case d.Map.Control():
		if v&CtrlReset != 0 {
			clear(d.in)
			clear(d.w)
			d.bias = 0
			d.busy = false
			d.done = false
			d.pending = 0
			return
		}
		if v&CtrlStart != 0 {
			if d.busy {
				// Hardware ignores a start while busy; the driver
				// is expected to have checked STATUS first.
				return
			}
			d.done = false
			if d.Latency == 0 {
				d.complete()
				return
			}
			d.busy = true
			d.pending = d.Latency
		}
		return
	case d.Map.Bias():
		d.bias = int32(v)
		return
	}
	if bank, i := d.lane(addr); bank != nil {
		bank[i] = int32(v)
	}
}

// lane decodes addr into the input or weight bank. Returns the backing
// slice and lane index, or nil when addr is not an operand slot.
func (d *SimHandshake) lane(addr uint32) ([]int32, int) {
	if addr < d.Map.Input(0) {
		return nil, 0
	}
	n := uint32(d.Map.Lanes)
	i := wordIndex(addr - d.Map.Input(0))
	switch {
	case i < n:
		return d.in, int(i)
	case i < 2*n:
		return d.w, int(i - n)
	}
	return nil, 0
}

// Read32 serves STATUS polls (advancing the completion countdown), the
// RESULT register, and operand read-back.
func (d *SimHandshake) Read32(addr uint32) uint32 {
	wordIndex(addr)
	switch addr {
	case d.Map.Status():
		if d.busy && d.pending > 0 {
			d.pending--
			if d.pending == 0 {
				d.complete()
			}
		}
		var s uint32
		if !d.busy {
			s |= StatusReady
		} else {
			s |= StatusBusy
		}
		if d.done {
			s |= StatusDone
		}
		return s
	case d.Map.Result():
		// Reading before done returns whatever the register last held:
		// the stale-read hazard, not an error. A completed read returns
		// the unit to Ready.
		v := uint32(d.result)
		if d.done {
			d.done = false
		}
		return v
	case d.Map.Bias():
		return uint32(d.bias)
	}
	if bank, i := d.lane(addr); bank != nil {
		return uint32(bank[i])
	}
	return 0
}

// SimAdder models the two-operand combinatorial adder peripheral.
type SimAdder struct {
	Map AdderMap

	a, b uint32
}

// NewSimAdder returns a simulated adder behind m.
func NewSimAdder(m AdderMap) *SimAdder {
	return &SimAdder{Map: m}
}

// Write32 stores an operand.
func (d *SimAdder) Write32(addr uint32, v uint32) {
	wordIndex(addr)
	switch addr {
	case d.Map.OperandA():
		d.a = v
	case d.Map.OperandB():
		d.b = v
	}
}

// Read32 returns operands as stored; RESULT is their wrapping sum.
func (d *SimAdder) Read32(addr uint32) uint32 {
	wordIndex(addr)
	switch addr {
	case d.Map.OperandA():
		return d.a
	case d.Map.OperandB():
		return d.b
	case d.Map.Result():
		return d.a + d.b
	}
	return 0
}
