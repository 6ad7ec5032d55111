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

package lgr

import "errors"

// The full error taxonomy of the driver stack. All three are local,
// recoverable conditions returned to the immediate caller; none is fatal.
// There is no automatic retry: a caller that needs resilience against
// ErrTimeout re-issues Reset and retries the whole sequence.
var (
	// ErrInvalidParameter reports absent or malformed arguments: nil
	// vectors, mismatched lengths, counts beyond the lane width on a
	// strict driver, or a zero scale factor.
	ErrInvalidParameter = errors.New("lgr: invalid parameter")

	// ErrBusy reports a start request while the unit is not idle.
	ErrBusy = errors.New("lgr: accelerator busy")

	// ErrTimeout reports that completion was not observed within the
	// caller-specified bound.
	ErrTimeout = errors.New("lgr: timeout waiting for accelerator")
)
