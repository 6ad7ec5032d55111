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

// Command lgr is the console shell for the logistic-regression
// accelerator drivers: run benchmarks, predictions and self tests
// against the simulated peripherals, or against real hardware through a
// memory-mapped CSR window.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-litex-lgr/lgr"
	"github.com/ajroetker/go-litex-lgr/lgr/accel"
	"github.com/ajroetker/go-litex-lgr/lgr/csr"
)

var (
	flagBackend string
	flagLanes   int
	flagFrac    uint
	flagLatency int
	flagTimeout time.Duration
	flagMMIO    string
	flagBase    int64
)

var rootCmd = &cobra.Command{
	Use:   "lgr",
	Short: "Drive the LiteX logistic-regression accelerators",
	Long: `lgr drives the dot-product accelerator peripherals: the wide
combinatorial unit, the start/poll/done handshake unit, and the
bit-exact software fallback. Without --mmio the peripherals are
simulated, which is enough for everything except real timings.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagBackend, "backend", "auto",
		"compute backend: auto, comb, handshake or software")
	pf.IntVar(&flagLanes, "lanes", 0,
		"lane width (default 64 for comb, 8 for handshake)")
	pf.UintVar(&flagFrac, "frac", 16, "fixed-point fractional bits")
	pf.IntVar(&flagLatency, "latency", 1,
		"simulated handshake completion latency in status polls")
	pf.DurationVar(&flagTimeout, "timeout", time.Second,
		"handshake wait-done timeout")
	pf.StringVar(&flagMMIO, "mmio", "",
		"memory device for real hardware, e.g. /dev/mem")
	pf.Int64Var(&flagBase, "base", 0, "physical CSR base address for --mmio")

	rootCmd.AddCommand(benchCmd, predictCmd, selftestCmd, infoCmd, addCmd)
}

// buildLane constructs the selected backend. Simulated peripherals stand
// in when no MMIO window is given.
func buildLane() (accel.Lane, error) {
	backend := flagBackend
	if backend == "auto" {
		// Both simulated peripherals are always present; real hardware
		// presence is the caller's claim via --mmio.
		backend = lgr.Select(true, true).String()
	}

	switch backend {
	case "software":
		lanes := flagLanes
		if lanes == 0 {
			lanes = csr.CombLanes
		}
		lgr.SetActive(lgr.BackendSoftware, lanes)
		return accel.NewSoftware(lanes, flagFrac), nil

	case "comb":
		lanes := flagLanes
		if lanes == 0 {
			lanes = csr.CombLanes
		}
		m := csr.CombMap{Base: 0, Lanes: lanes}
		bus, err := openBus(m.Size())
		if err != nil {
			return nil, err
		}
		if bus == nil {
			bus = csr.NewSimComb(m, flagFrac)
		}
		lgr.SetActive(lgr.BackendComb, lanes)
		return accel.NewComb(bus, m, flagFrac), nil

	case "handshake":
		lanes := flagLanes
		if lanes == 0 {
			lanes = csr.HandshakeLanes
		}
		m := csr.HandshakeMap{Base: 0, Lanes: lanes}
		bus, err := openBus(m.Size())
		if err != nil {
			return nil, err
		}
		if bus == nil {
			bus = csr.NewSimHandshake(m, flagFrac, flagLatency)
		}
		lgr.SetActive(lgr.BackendHandshake, lanes)
		return accel.NewHandshake(bus, m, flagFrac, nil, flagTimeout), nil
	}
	return nil, fmt.Errorf("unknown backend %q", flagBackend)
}

// openBus maps the hardware CSR window when --mmio is set. A nil bus
// with nil error means "use the simulator".
func openBus(size uint32) (csr.Bus, error) {
	if flagMMIO == "" {
		return nil, nil
	}
	return csr.OpenMMIO(flagMMIO, flagBase, int(size))
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
