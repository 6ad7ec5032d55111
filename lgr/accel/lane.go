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

// Package accel contains the drivers for the dot-product accelerator
// peripherals and the software fallback that reproduces their arithmetic
// bit for bit. All three expose the same per-chunk contract, Lane, so the
// chunked engine in lgr/dot is written once against any width.
package accel

// Lane is the per-chunk compute primitive: a unit that multiplies up to
// Width input/weight pairs in fixed point and returns their truncated
// 32-bit sum. Implementations are not safe for concurrent use; each
// models exclusive ownership of one compute resource driven by a single
// caller at a time.
type Lane interface {
	// Name returns the short backend name of the unit, e.g. "comb",
	// "handshake" or "software".
	Name() string

	// Width returns the number of input/weight slots processed per chunk.
	Width() int

	// FracBits returns the fractional bit count of the lane's fixed-point
	// format. Zero means raw integer multiply (the scale-factor wire
	// encoding).
	FracBits() uint

	// Compute runs one chunk. inputs and weights may be shorter than
	// Width; missing lanes are zero and contribute nothing. The drivers
	// return ErrInvalidParameter for absent operands, and the handshake
	// driver additionally surfaces ErrBusy and ErrTimeout from its
	// start/poll cycle.
	Compute(inputs, weights []int32) (int32, error)
}
