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

// Package bench times repeated predictions through each compute path and
// reports elapsed ticks. The output is for human inspection only; nothing
// re-parses it.
package bench

import (
	"time"

	"github.com/ajroetker/go-litex-lgr/lgr"
)

// Stopwatch latches a tick counter at start and stop, the way the timer
// peripheral driver does. It measures one interval at a time; Start
// discards any previous measurement.
type Stopwatch struct {
	clock   lgr.Clock
	start   uint64
	elapsed uint64
}

// NewStopwatch returns a stopwatch on the given clock, or the system
// clock when nil.
func NewStopwatch(clock lgr.Clock) *Stopwatch {
	if clock == nil {
		clock = lgr.SystemClock{}
	}
	return &Stopwatch{clock: clock}
}

// Start latches the current tick count.
func (s *Stopwatch) Start() {
	s.elapsed = 0
	s.start = s.clock.Ticks()
}

// Stop latches the elapsed ticks since Start.
func (s *Stopwatch) Stop() {
	s.elapsed = s.clock.Ticks() - s.start
}

// ElapsedTicks returns the ticks measured by the last Start/Stop pair.
func (s *Stopwatch) ElapsedTicks() uint64 {
	return s.elapsed
}

// Elapsed converts the measured ticks to a duration at the clock's rate.
// The division is split to avoid overflowing the tick-to-nanosecond
// multiply on long intervals.
func (s *Stopwatch) Elapsed() time.Duration {
	hz := s.clock.Hz()
	secs := s.elapsed / hz
	rem := s.elapsed % hz
	return time.Duration(secs)*time.Second +
		time.Duration(rem*uint64(time.Second)/hz)
}

// Milliseconds returns the measurement in whole milliseconds using only
// integer arithmetic, like the reference report code on the float-less
// soft CPU.
func (s *Stopwatch) Milliseconds() uint64 {
	hz := s.clock.Hz()
	secs := s.elapsed / hz
	rem := s.elapsed % hz
	return secs*1000 + rem*1000/hz
}
