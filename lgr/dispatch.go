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

// Package lgr holds the pieces shared by every accelerator driver in this
// module: the backend selection state, the error taxonomy, and the tick
// clock abstraction used by busy-wait loops and benchmarks.
package lgr

import (
	"os"
	"strconv"
)

// Backend identifies which compute path is driving dot products.
type Backend int

const (
	// BackendSoftware indicates no accelerator, pure Go fallback.
	BackendSoftware Backend = iota

	// BackendHandshake indicates the start/poll/done accelerator variant
	// (8 lanes on the reference gateware, with a bias register).
	BackendHandshake

	// BackendComb indicates the combinatorial accelerator variant whose
	// result is valid as soon as the last operand register is written
	// (64 lanes on the reference gateware).
	BackendComb
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendSoftware:
		return "software"
	case BackendHandshake:
		return "handshake"
	case BackendComb:
		return "comb"
	default:
		return "unknown"
	}
}

// currentBackend is the backend most recently activated for this process.
// Programs record their selection here via SetActive after constructing
// the lane they will drive.
var currentBackend Backend

// currentLanes is the lane width of the active backend.
var currentLanes int

// currentName is the human-readable name of the active backend.
var currentName = "software"

// CurrentBackend returns the compute backend in use.
func CurrentBackend() Backend {
	return currentBackend
}

// CurrentLanes returns the lane width of the active backend.
// For example: 8 for the handshake variant, 64 for the combinatorial one.
func CurrentLanes() int {
	return currentLanes
}

// CurrentName returns a human-readable name for the active backend.
// For example: "handshake", "comb", "software".
func CurrentName() string {
	return currentName
}

// SetActive records the process-wide backend selection. Programs call it
// once after choosing and constructing a lane; diagnostic tools read it
// back.
func SetActive(b Backend, lanes int) {
	currentBackend = b
	currentLanes = lanes
	currentName = b.String()
}

// NoAccelEnv checks if the LGR_NO_ACCEL environment variable is set.
// When set, Select returns the software fallback regardless of which
// accelerator peripherals are present. This is useful for testing and
// for benchmarking the CPU paths on accelerator-equipped targets.
func NoAccelEnv() bool {
	val := os.Getenv("LGR_NO_ACCEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Select picks a backend given which accelerator peripherals were found on
// the bus. The combinatorial variant wins when both are present: it needs
// no handshake round-trip per chunk and carries eight times the lanes.
func Select(hasHandshake, hasComb bool) Backend {
	if NoAccelEnv() {
		return BackendSoftware
	}
	switch {
	case hasComb:
		return BackendComb
	case hasHandshake:
		return BackendHandshake
	default:
		return BackendSoftware
	}
}
