package bench

import (
	"fmt"
	"time"

	"github.com/ajroetker/go-litex-lgr/lgr"
	"github.com/ajroetker/go-litex-lgr/lgr/accel"
	"github.com/ajroetker/go-litex-lgr/lgr/dot"
)

// Result is one timed prediction path.
type Result struct {
	Name       string
	Iterations int
	Ticks      uint64
	Elapsed    time.Duration

	// Value accumulates the predictions across iterations, both as a
	// sanity check that the paths agree and to keep the loop from being
	// optimized into nothing.
	Value float64
}

// Compare times n repeated predictions of the same affine model through
// three paths: plain CPU floating point, CPU fixed point, and the given
// accelerator lane. The lane's width and fixed-point format decide the
// chunking and the encoding for both non-float paths.
func Compare(n int, lane accel.Lane, inputs, weights []float64, bias float64, clock lgr.Clock) ([]Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("bench: iteration count %d: %w", n, lgr.ErrInvalidParameter)
	}
	if clock == nil {
		clock = lgr.SystemClock{}
	}

	results := make([]Result, 0, 3)
	sw := NewStopwatch(clock)

	// CPU floating point, the straight-line loop every other path is
	// measured against.
	sw.Start()
	var acc float64
	for i := 0; i < n; i++ {
		var s float64
		for j := range inputs {
			s += inputs[j] * weights[j]
		}
		acc += s + bias
	}
	sw.Stop()
	results = append(results, Result{
		Name: "cpu/float64", Iterations: n,
		Ticks: sw.ElapsedTicks(), Elapsed: sw.Elapsed(), Value: acc,
	})

	// CPU fixed point: the software lane, same truncating arithmetic as
	// the hardware.
	soft := dot.NewPredictor(dot.New(accel.NewSoftware(lane.Width(), lane.FracBits())))
	r, err := timePath(sw, "cpu/fixed", n, soft, inputs, weights, bias)
	if err != nil {
		return nil, err
	}
	results = append(results, r)

	// The accelerator path, labeled by the lane itself rather than the
	// process-wide dispatch state.
	hw := dot.NewPredictor(dot.New(lane))
	r, err = timePath(sw, "accel/"+lane.Name(), n, hw, inputs, weights, bias)
	if err != nil {
		return nil, err
	}
	results = append(results, r)

	return results, nil
}

func timePath(sw *Stopwatch, name string, n int, p *dot.Predictor, inputs, weights []float64, bias float64) (Result, error) {
	sw.Start()
	var acc float64
	for i := 0; i < n; i++ {
		v, err := p.Predict(inputs, weights, bias)
		if err != nil {
			return Result{}, fmt.Errorf("bench: %s: %w", name, err)
		}
		acc += v
	}
	sw.Stop()
	return Result{
		Name: name, Iterations: n,
		Ticks: sw.ElapsedTicks(), Elapsed: sw.Elapsed(), Value: acc,
	}, nil
}
