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

import "time"

// Clock is a monotonic tick source. The handshake driver samples it on
// every spin of its wait loop and the benchmark stopwatch latches it at
// start and stop, so injecting a fake clock makes both deterministic
// under test. On hardware this stands in for the LiteX timer peripheral.
type Clock interface {
	// Ticks returns the current counter value. The counter only moves
	// forward; the zero point is unspecified.
	Ticks() uint64

	// Hz returns the counter frequency in ticks per second.
	Hz() uint64
}

// SystemClock is a Clock backed by the Go runtime's monotonic clock,
// counting nanoseconds.
type SystemClock struct{}

var systemEpoch = time.Now()

// Ticks returns nanoseconds elapsed since process start.
func (SystemClock) Ticks() uint64 {
	return uint64(time.Since(systemEpoch))
}

// Hz returns 1e9: SystemClock ticks are nanoseconds.
func (SystemClock) Hz() uint64 {
	return uint64(time.Second)
}

// TickClock is a manually advanced Clock for tests. Each Ticks call
// returns the current count and then advances it by Step, so a spin loop
// observes time passing without any real delay. Not safe for concurrent
// use, matching the single-caller model of the drivers it is injected
// into.
type TickClock struct {
	// Step is added to the counter after every Ticks call. A zero Step
	// freezes time, which makes zero-timeout expiry observable.
	Step uint64

	ticks uint64
}

// Ticks returns the counter and advances it by Step.
func (c *TickClock) Ticks() uint64 {
	t := c.ticks
	c.ticks += c.Step
	return t
}

// Hz reports one tick per millisecond, a convenient rate for expressing
// timeouts in tests.
func (c *TickClock) Hz() uint64 {
	return 1000
}

// Advance moves the counter forward by n ticks.
func (c *TickClock) Advance(n uint64) {
	c.ticks += n
}

// Timeout converts a duration to a tick count on clock c, rounding down.
// The division is split so the nanosecond-to-tick multiply cannot
// overflow on long durations.
func Timeout(c Clock, d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	secs := uint64(d) / uint64(time.Second)
	rem := uint64(d) % uint64(time.Second)
	return secs*c.Hz() + rem*c.Hz()/uint64(time.Second)
}
