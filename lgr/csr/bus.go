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

// Package csr models the LiteX CSR bus the accelerator peripherals hang
// off of: 32-bit registers at fixed byte offsets. Drivers in lgr/accel
// talk to a Bus; the Bus is either memory-mapped hardware (OpenMMIO), a
// plain register file (MemBus), or a simulated peripheral that computes
// the way the gateware does (SimComb, SimHandshake, SimAdder).
package csr

import "fmt"

// Bus provides 32-bit register access at byte offsets. Offsets must be
// 4-byte aligned; implementations panic on unaligned access, which is a
// programmer error rather than a runtime condition.
//
// Bus implementations are not safe for concurrent use: they model
// exclusive ownership of one physical resource, and the drivers assume a
// single caller runs each operation to completion.
type Bus interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, v uint32)
}

// wordIndex converts a byte offset to a word index, panicking on
// unaligned access.
func wordIndex(addr uint32) uint32 {
	if addr%4 != 0 {
		panic(fmt.Sprintf("csr: unaligned register access at 0x%08x", addr))
	}
	return addr / 4
}

// MemBus is a RAM-backed register file. It gives the drivers something
// bus-shaped to poke in tests and serves as scratch storage for the
// simulated peripherals.
type MemBus struct {
	words []uint32
}

// NewMemBus returns a MemBus covering size bytes of register space.
func NewMemBus(size uint32) *MemBus {
	return &MemBus{words: make([]uint32, (size+3)/4)}
}

// Read32 returns the register at addr.
func (b *MemBus) Read32(addr uint32) uint32 {
	return b.words[wordIndex(addr)]
}

// Write32 sets the register at addr.
func (b *MemBus) Write32(addr uint32, v uint32) {
	b.words[wordIndex(addr)] = v
}
