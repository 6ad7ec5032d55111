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

// Control register bits of the handshake accelerator.
const (
	CtrlStart = 1 << 0 // begin a computation
	CtrlReset = 1 << 1 // clear operand storage and return to Ready
)

// Status register bits of the handshake accelerator.
const (
	StatusReady = 1 << 0 // unit will accept a start
	StatusDone  = 1 << 1 // result register holds a completed computation
	StatusBusy  = 1 << 2 // computation in flight
)

// Default lane widths of the two accelerator variants as built in the
// reference gateware.
const (
	HandshakeLanes = 8
	CombLanes      = 64
)

// HandshakeMap lays out the registers of the start/poll/done accelerator
// variant: CONTROL, STATUS, BIAS and RESULT up front, then one 32-bit
// slot per input lane followed by one per weight lane.
type HandshakeMap struct {
	Base  uint32
	Lanes int
}

// Control returns the byte offset of the CONTROL register.
func (m HandshakeMap) Control() uint32 { return m.Base + 0x00 }

// Status returns the byte offset of the STATUS register.
func (m HandshakeMap) Status() uint32 { return m.Base + 0x04 }

// Bias returns the byte offset of the BIAS register.
func (m HandshakeMap) Bias() uint32 { return m.Base + 0x08 }

// Result returns the byte offset of the RESULT register.
func (m HandshakeMap) Result() uint32 { return m.Base + 0x0c }

// Input returns the byte offset of input lane i.
func (m HandshakeMap) Input(i int) uint32 {
	return m.Base + 0x10 + 4*uint32(i)
}

// Weight returns the byte offset of weight lane i.
func (m HandshakeMap) Weight(i int) uint32 {
	return m.Base + 0x10 + 4*uint32(m.Lanes) + 4*uint32(i)
}

// Size returns the register window size in bytes.
func (m HandshakeMap) Size() uint32 {
	return 0x10 + 8*uint32(m.Lanes)
}

// CombMap lays out the registers of the combinatorial accelerator
// variant: per-lane INPUT and WEIGHT slots and a RESULT register that is
// valid as soon as the last operand is written. There is no control or
// status register; the unit has no handshake.
type CombMap struct {
	Base  uint32
	Lanes int
}

// Input returns the byte offset of input lane i.
func (m CombMap) Input(i int) uint32 {
	return m.Base + 4*uint32(i)
}

// Weight returns the byte offset of weight lane i.
func (m CombMap) Weight(i int) uint32 {
	return m.Base + 4*uint32(m.Lanes) + 4*uint32(i)
}

// Result returns the byte offset of the RESULT register.
func (m CombMap) Result() uint32 {
	return m.Base + 8*uint32(m.Lanes)
}

// Size returns the register window size in bytes.
func (m CombMap) Size() uint32 {
	return 8*uint32(m.Lanes) + 4
}

// AdderMap lays out the trivial two-operand adder peripheral.
type AdderMap struct {
	Base uint32
}

// OperandA returns the byte offset of the first operand register.
func (m AdderMap) OperandA() uint32 { return m.Base + 0x00 }

// OperandB returns the byte offset of the second operand register.
func (m AdderMap) OperandB() uint32 { return m.Base + 0x04 }

// Result returns the byte offset of the RESULT register.
func (m AdderMap) Result() uint32 { return m.Base + 0x08 }

// Size returns the register window size in bytes.
func (m AdderMap) Size() uint32 { return 0x0c }
