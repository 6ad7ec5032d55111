package accel

import (
	"math/rand"
	"testing"
	"time"

	"github.com/ajroetker/go-litex-lgr/lgr"
	"github.com/ajroetker/go-litex-lgr/lgr/csr"
)

// randChunk produces operands spanning the full fixed-point range,
// including values whose products need the 64-bit intermediate.
func randChunk(rng *rand.Rand, n int) []int32 {
	vals := make([]int32, n)
	for i := range vals {
		vals[i] = int32(rng.Uint32())
	}
	return vals
}

func TestSoftwareMatchesCombBitExact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, frac := range []uint{0, 16} {
		for _, lanes := range []int{8, 64} {
			m := csr.CombMap{Base: 0, Lanes: lanes}
			hw := NewComb(csr.NewSimComb(m, frac), m, frac)
			sw := NewSoftware(lanes, frac)

			for trial := 0; trial < 200; trial++ {
				n := rng.Intn(lanes + 1)
				in := randChunk(rng, n)
				w := randChunk(rng, n)

				hwGot, err := hw.Compute(in, w)
				if err != nil {
					t.Fatalf("hw Compute: %v", err)
				}
				swGot, err := sw.Compute(in, w)
				if err != nil {
					t.Fatalf("sw Compute: %v", err)
				}
				if hwGot != swGot {
					t.Fatalf("frac %d lanes %d trial %d: hw = %d, sw = %d (inputs %v, weights %v)",
						frac, lanes, trial, hwGot, swGot, in, w)
				}
			}
		}
	}
}

func TestSoftwareMatchesHandshakeBitExact(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const lanes = 8
	for _, frac := range []uint{0, 16} {
		m := csr.HandshakeMap{Base: 0, Lanes: lanes}
		hw := NewHandshake(csr.NewSimHandshake(m, frac, 3), m, frac,
			&lgr.TickClock{Step: 1}, time.Second)
		sw := NewSoftware(lanes, frac)

		for trial := 0; trial < 100; trial++ {
			n := rng.Intn(lanes + 1)
			in := randChunk(rng, n)
			w := randChunk(rng, n)

			hwGot, err := hw.Compute(in, w)
			if err != nil {
				t.Fatalf("hw Compute: %v", err)
			}
			swGot, err := sw.Compute(in, w)
			if err != nil {
				t.Fatalf("sw Compute: %v", err)
			}
			if hwGot != swGot {
				t.Fatalf("frac %d trial %d: hw = %d, sw = %d (inputs %v, weights %v)",
					frac, trial, hwGot, swGot, in, w)
			}
		}
	}
}

func TestSoftwareClampsLikeComb(t *testing.T) {
	sw := NewSoftware(4, 0)
	long := []int32{1, 1, 1, 1, 100, 100}
	got, err := sw.Compute(long, long)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got != 4 {
		t.Errorf("clamped Compute = %d, want 4", got)
	}
}

func TestNewSoftwarePanicsOnBadWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSoftware(0, 0) did not panic")
		}
	}()
	NewSoftware(0, 0)
}

func TestLaneNames(t *testing.T) {
	combMap := csr.CombMap{Base: 0, Lanes: 8}
	hsMap := csr.HandshakeMap{Base: 0, Lanes: 8}

	tests := []struct {
		lane Lane
		want string
	}{
		{NewSoftware(8, 16), "software"},
		{NewComb(csr.NewSimComb(combMap, 16), combMap, 16), "comb"},
		{NewHandshake(csr.NewSimHandshake(hsMap, 16, 1), hsMap, 16, &lgr.TickClock{Step: 1}, time.Second), "handshake"},
	}
	for _, tt := range tests {
		if got := tt.lane.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestSelfTestAllLanes(t *testing.T) {
	combMap := csr.CombMap{Base: 0, Lanes: 64}
	hsMap := csr.HandshakeMap{Base: 0, Lanes: 8}

	lanes := map[string]Lane{
		"software/8":    NewSoftware(8, 16),
		"software/64":   NewSoftware(64, 0),
		"comb/64":       NewComb(csr.NewSimComb(combMap, 16), combMap, 16),
		"handshake/8":   NewHandshake(csr.NewSimHandshake(hsMap, 16, 1), hsMap, 16, &lgr.TickClock{Step: 1}, time.Second),
		"handshake/raw": NewHandshake(csr.NewSimHandshake(hsMap, 0, 1), hsMap, 0, &lgr.TickClock{Step: 1}, time.Second),
	}
	for name, l := range lanes {
		if err := SelfTest(l); err != nil {
			t.Errorf("SelfTest(%s): %v", name, err)
		}
	}
}

func TestSelfTestCatchesBrokenUnit(t *testing.T) {
	if err := SelfTest(brokenLane{}); err == nil {
		t.Error("SelfTest on a broken lane returned nil")
	}
}

// brokenLane always returns the wrong answer.
type brokenLane struct{}

func (brokenLane) Name() string   { return "broken" }
func (brokenLane) Width() int     { return 8 }
func (brokenLane) FracBits() uint { return 0 }
func (brokenLane) Compute(in, w []int32) (int32, error) {
	return 12345, nil
}
