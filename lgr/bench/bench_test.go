package bench

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ajroetker/go-litex-lgr/lgr"
	"github.com/ajroetker/go-litex-lgr/lgr/accel"
	"github.com/ajroetker/go-litex-lgr/lgr/csr"
)

func TestStopwatch(t *testing.T) {
	c := &lgr.TickClock{} // 1000 Hz, manually advanced
	sw := NewStopwatch(c)

	sw.Start()
	c.Advance(2500)
	sw.Stop()

	if got := sw.ElapsedTicks(); got != 2500 {
		t.Errorf("ElapsedTicks() = %d, want 2500", got)
	}
	if got := sw.Elapsed(); got != 2500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 2.5s", got)
	}
	if got := sw.Milliseconds(); got != 2500 {
		t.Errorf("Milliseconds() = %d, want 2500", got)
	}
}

func TestStopwatchRestart(t *testing.T) {
	c := &lgr.TickClock{}
	sw := NewStopwatch(c)

	sw.Start()
	c.Advance(100)
	sw.Stop()

	sw.Start()
	c.Advance(7)
	sw.Stop()
	if got := sw.ElapsedTicks(); got != 7 {
		t.Errorf("ElapsedTicks() after restart = %d, want 7", got)
	}
}

func TestCompareAgreesAcrossPaths(t *testing.T) {
	m := csr.CombMap{Base: 0, Lanes: 8}
	lane := accel.NewComb(csr.NewSimComb(m, 16), m, 16)

	inputs := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	weights := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	results, err := Compare(10, lane, inputs, weights, 1000, &lgr.TickClock{Step: 1})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	// Whole numbers encode exactly, so all three paths accumulate the
	// same value: 10 * (36 + 1000).
	for _, r := range results {
		if r.Value != 10360 {
			t.Errorf("%s accumulated %v, want 10360", r.Name, r.Value)
		}
		if r.Iterations != 10 {
			t.Errorf("%s iterations = %d, want 10", r.Name, r.Iterations)
		}
	}

	// Fixed and accelerator paths ran the same encoded arithmetic.
	if results[1].Value != results[2].Value {
		t.Errorf("fixed path %v != accel path %v", results[1].Value, results[2].Value)
	}
}

func TestCompareNamesAccelPathFromLane(t *testing.T) {
	// The accelerator row is labeled by the lane under test, independent
	// of whatever the process-wide dispatch state happens to say.
	lgr.SetActive(lgr.BackendSoftware, 0)
	defer lgr.SetActive(lgr.BackendSoftware, 0)

	m := csr.CombMap{Base: 0, Lanes: 8}
	lane := accel.NewComb(csr.NewSimComb(m, 16), m, 16)

	results, err := Compare(1, lane, []float64{1}, []float64{1}, 0, &lgr.TickClock{Step: 1})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got := results[2].Name; got != "accel/comb" {
		t.Errorf("accelerator path name = %q, want %q", got, "accel/comb")
	}
}

func TestCompareRejectsBadIterationCount(t *testing.T) {
	lane := accel.NewSoftware(8, 16)
	if _, err := Compare(0, lane, []float64{1}, []float64{1}, 0, nil); !errors.Is(err, lgr.ErrInvalidParameter) {
		t.Errorf("Compare(0, ...) error = %v, want ErrInvalidParameter", err)
	}
}

func TestReport(t *testing.T) {
	results := []Result{
		{Name: "cpu/float64", Iterations: 100000, Ticks: 1234567, Elapsed: 1234567 * time.Nanosecond, Value: 42},
		{Name: "accel/comb", Iterations: 100000, Ticks: 123456, Elapsed: 123456 * time.Nanosecond, Value: 42},
	}

	var sb strings.Builder
	Report(&sb, results)
	out := sb.String()

	if !strings.Contains(out, "cpu/float64") || !strings.Contains(out, "accel/comb") {
		t.Errorf("report missing path names:\n%s", out)
	}
	if !strings.Contains(out, "1,234,567") {
		t.Errorf("report missing grouped tick count:\n%s", out)
	}
	if !strings.Contains(out, "10.00x") {
		t.Errorf("report missing speedup line:\n%s", out)
	}
}
