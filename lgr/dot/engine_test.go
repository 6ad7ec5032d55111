package dot

import (
	"errors"
	"testing"
	"time"

	"github.com/ajroetker/go-litex-lgr/lgr"
	"github.com/ajroetker/go-litex-lgr/lgr/accel"
	"github.com/ajroetker/go-litex-lgr/lgr/csr"
	"github.com/ajroetker/go-litex-lgr/lgr/fixed"
)

// countingLane wraps a Lane and counts invocations.
type countingLane struct {
	accel.Lane
	calls int
}

func (c *countingLane) Compute(in, w []int32) (int32, error) {
	c.calls++
	return c.Lane.Compute(in, w)
}

func ones(n int) []int32 {
	v := make([]int32, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

func iota1(n int) []int32 {
	v := make([]int32, n)
	for i := range v {
		v[i] = int32(i + 1)
	}
	return v
}

func TestDotFixedSingleChunk(t *testing.T) {
	e := New(accel.NewSoftware(8, 0))
	got, err := e.DotFixed(iota1(8), ones(8))
	if err != nil {
		t.Fatalf("DotFixed: %v", err)
	}
	if got != 36 {
		t.Errorf("DotFixed(1..8, ones) = %d, want 36", got)
	}
}

func TestDotFixedZeroWeights(t *testing.T) {
	e := New(accel.NewSoftware(8, 0))
	got, err := e.DotFixed(iota1(8), make([]int32, 8))
	if err != nil {
		t.Fatalf("DotFixed: %v", err)
	}
	if got != 0 {
		t.Errorf("DotFixed(1..8, zeros) = %d, want 0", got)
	}
}

func TestDotFixedThreeChunks(t *testing.T) {
	inputs := []int32{
		1, 2, 3, 4, 5, 6, 7, 8,
		2, 4, 6, 8, 10, 12, 14, 16,
		1, 1, 1, 1, 1, 1, 1, 1,
	}
	lane := &countingLane{Lane: accel.NewSoftware(8, 0)}
	e := New(lane)

	got, err := e.DotFixed(inputs, ones(24))
	if err != nil {
		t.Fatalf("DotFixed: %v", err)
	}
	if got != 116 {
		t.Errorf("DotFixed = %d, want 116 (36+72+8)", got)
	}
	if lane.calls != 3 {
		t.Errorf("lane invocations = %d, want 3", lane.calls)
	}
}

func TestChunkCountIsCeil(t *testing.T) {
	for _, width := range []int{8, 64} {
		for size := 0; size <= 300; size++ {
			lane := &countingLane{Lane: accel.NewSoftware(width, 0)}
			e := New(lane)
			if _, err := e.DotFixed(iota1(size), ones(size)); err != nil {
				t.Fatalf("width %d size %d: %v", width, size, err)
			}
			want := (size + width - 1) / width
			if lane.calls != want {
				t.Errorf("width %d size %d: lane invocations = %d, want %d",
					width, size, lane.calls, want)
			}
		}
	}
}

func TestZeroPaddingNeutral(t *testing.T) {
	base := iota1(13)
	wts := ones(13)
	e := New(accel.NewSoftware(8, 0))

	want, err := e.DotFixed(base, wts)
	if err != nil {
		t.Fatalf("DotFixed: %v", err)
	}

	for _, extra := range []int{1, 7, 8, 51} {
		in := append(append([]int32{}, base...), make([]int32, extra)...)
		w := append(append([]int32{}, wts...), make([]int32, extra)...)
		got, err := e.DotFixed(in, w)
		if err != nil {
			t.Fatalf("DotFixed with %d zeros appended: %v", extra, err)
		}
		if got != want {
			t.Errorf("DotFixed with %d zeros appended = %d, want %d", extra, got, want)
		}
	}
}

func TestDotFixedDoesNotMutateOperands(t *testing.T) {
	in := iota1(13)
	w := ones(13)
	inCopy := append([]int32{}, in...)
	wCopy := append([]int32{}, w...)

	e := New(accel.NewSoftware(8, 0))
	if _, err := e.DotFixed(in, w); err != nil {
		t.Fatalf("DotFixed: %v", err)
	}
	for i := range in {
		if in[i] != inCopy[i] || w[i] != wCopy[i] {
			t.Fatalf("operands mutated at %d: in %d->%d, w %d->%d",
				i, inCopy[i], in[i], wCopy[i], w[i])
		}
	}
}

func TestDotFixedInvalidOperands(t *testing.T) {
	e := New(accel.NewSoftware(8, 0))
	if _, err := e.DotFixed(nil, ones(8)); !errors.Is(err, lgr.ErrInvalidParameter) {
		t.Errorf("DotFixed(nil, w) error = %v, want ErrInvalidParameter", err)
	}
	if _, err := e.DotFixed(iota1(8), nil); !errors.Is(err, lgr.ErrInvalidParameter) {
		t.Errorf("DotFixed(in, nil) error = %v, want ErrInvalidParameter", err)
	}
	if _, err := e.DotFixed(iota1(8), ones(7)); !errors.Is(err, lgr.ErrInvalidParameter) {
		t.Errorf("DotFixed length mismatch error = %v, want ErrInvalidParameter", err)
	}
}

func TestDotFixedPropagatesTimeout(t *testing.T) {
	m := csr.HandshakeMap{Base: 0, Lanes: 8}
	stuck := csr.NewSimHandshake(m, 0, -1)
	h := accel.NewHandshake(stuck, m, 0, &lgr.TickClock{Step: 1}, 10*time.Millisecond)

	e := New(h)
	if _, err := e.DotFixed(iota1(16), ones(16)); !errors.Is(err, lgr.ErrTimeout) {
		t.Errorf("DotFixed on stuck unit error = %v, want ErrTimeout", err)
	}
}

func TestHardwareAndSoftwarePathsBitIdentical(t *testing.T) {
	combMap := csr.CombMap{Base: 0, Lanes: 8}
	hw := New(accel.NewComb(csr.NewSimComb(combMap, 16), combMap, 16))
	sw := New(accel.NewSoftware(8, 16))

	// Values chosen so products truncate: the two paths must truncate
	// identically, not merely be close.
	inputs := make([]float64, 53)
	weights := make([]float64, 53)
	for i := range inputs {
		inputs[i] = float64(i)*0.37 - 9.4
		weights[i] = float64(52-i)*0.11 - 2.9
	}

	in := make([]int32, len(inputs))
	w := make([]int32, len(weights))
	for i := range inputs {
		in[i] = fixed.Encode(inputs[i], 16)
		w[i] = fixed.Encode(weights[i], 16)
	}

	hwAcc, err := hw.DotFixed(in, w)
	if err != nil {
		t.Fatalf("hardware DotFixed: %v", err)
	}
	swAcc, err := sw.DotFixed(in, w)
	if err != nil {
		t.Fatalf("software DotFixed: %v", err)
	}
	if hwAcc != swAcc {
		t.Errorf("accumulators differ: hardware %d, software %d", hwAcc, swAcc)
	}
}

func TestDotFloatPath(t *testing.T) {
	e := New(accel.NewSoftware(8, 16))
	got, err := e.Dot([]float64{1, 2, 3, 4, 5, 6, 7, 8}, []float64{1, 1, 1, 1, 1, 1, 1, 1})
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}
	if got != 36 {
		t.Errorf("Dot = %v, want 36", got)
	}
}

func TestDotScaled(t *testing.T) {
	e := New(accel.NewSoftware(8, 0))
	// scale 100: 1.5 -> 150, 2.0 -> 200; products carry scale².
	got, err := e.DotScaled([]float64{1.5}, []float64{2.0}, 100)
	if err != nil {
		t.Fatalf("DotScaled: %v", err)
	}
	if got != 30000 {
		t.Errorf("DotScaled = %d, want 30000", got)
	}

	if _, err := e.DotScaled([]float64{1}, []float64{1}, 0); !errors.Is(err, lgr.ErrInvalidParameter) {
		t.Errorf("DotScaled(scale 0) error = %v, want ErrInvalidParameter", err)
	}
}

func TestDotEmptyVectors(t *testing.T) {
	lane := &countingLane{Lane: accel.NewSoftware(8, 0)}
	e := New(lane)
	got, err := e.DotFixed([]int32{}, []int32{})
	if err != nil {
		t.Fatalf("DotFixed(empty): %v", err)
	}
	if got != 0 {
		t.Errorf("DotFixed(empty) = %d, want 0", got)
	}
	if lane.calls != 0 {
		t.Errorf("lane invocations for empty input = %d, want 0", lane.calls)
	}
}
