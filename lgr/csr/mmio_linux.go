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

//go:build linux

package csr

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mmioBus is a Bus over a memory-mapped CSR window, typically /dev/mem on
// a Linux-on-LiteX target. Register offsets passed to Read32/Write32 are
// relative to the mapped base.
type mmioBus struct {
	f   *os.File
	mem []byte
}

// OpenMMIO maps size bytes of the CSR window at physical address base
// from device (usually "/dev/mem") and returns a Bus over it. Close the
// returned bus to unmap.
//
// base and size must be page-aligned for the underlying mmap; LiteX CSR
// windows are.
func OpenMMIO(device string, base int64, size int) (*mmioBus, error) {
	f, err := os.OpenFile(device, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("csr: open %s: %w", device, err)
	}
	mem, err := unix.Mmap(int(f.Fd()), base, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("csr: mmap %s @ 0x%x: %w", device, base, err)
	}
	return &mmioBus{f: f, mem: mem}, nil
}

// Read32 performs a 32-bit register read. The atomic load keeps the
// compiler from coalescing or reordering accesses to the device window.
func (b *mmioBus) Read32(addr uint32) uint32 {
	wordIndex(addr)
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&b.mem[addr])))
}

// Write32 performs a 32-bit register write.
func (b *mmioBus) Write32(addr uint32, v uint32) {
	wordIndex(addr)
	atomic.StoreUint32((*uint32)(unsafe.Pointer(&b.mem[addr])), v)
}

// Close unmaps the CSR window.
func (b *mmioBus) Close() error {
	err := unix.Munmap(b.mem)
	if cerr := b.f.Close(); err == nil {
		err = cerr
	}
	b.mem = nil
	return err
}
