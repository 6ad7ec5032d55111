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

//go:build !linux

package csr

import "errors"

// mmioBus is only available on Linux targets, where the CSR window is
// reachable through /dev/mem. Other platforms use the simulated
// peripherals.
type mmioBus struct{}

// OpenMMIO always fails on non-Linux platforms.
func OpenMMIO(device string, base int64, size int) (*mmioBus, error) {
	return nil, errors.New("csr: memory-mapped CSR access requires linux")
}

func (b *mmioBus) Read32(addr uint32) uint32 {
	panic("csr: mmio bus not supported on this platform")
}

func (b *mmioBus) Write32(addr uint32, v uint32) {
	panic("csr: mmio bus not supported on this platform")
}

// Close is a no-op on non-Linux platforms.
func (b *mmioBus) Close() error { return nil }
