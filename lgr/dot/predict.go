package dot

import (
	"math"

	"github.com/ajroetker/go-litex-lgr/lgr/fixed"
)

// Predictor composes the chunked engine with a bias add: a single-neuron
// linear/logistic model evaluated over either compute path. The bias is
// added on the CPU after accumulation, never per chunk, so predictions
// are path-independent.
type Predictor struct {
	eng *Engine
}

// NewPredictor returns a predictor over the given engine.
func NewPredictor(eng *Engine) *Predictor {
	return &Predictor{eng: eng}
}

// PredictFixed computes dot(inputs, weights) + bias over pre-encoded
// operands. The caller supplies bias in the same fixed-point scale as the
// dot-product terms; a mismatched scale silently skews the result, which
// is the caller's responsibility, not validated here.
func (p *Predictor) PredictFixed(inputs, weights []int32, bias int64) (int64, error) {
	acc, err := p.eng.DotFixed(inputs, weights)
	if err != nil {
		return 0, err
	}
	return acc + bias, nil
}

// Predict computes dot(inputs, weights) + bias over real-valued operands,
// encoding internally at the lane's fixed-point format.
func (p *Predictor) Predict(inputs, weights []float64, bias float64) (float64, error) {
	frac := p.eng.Lane().FracBits()
	acc, err := p.eng.DotFixed(mustEncode(inputs, frac), mustEncode(weights, frac))
	if err != nil {
		return 0, err
	}
	return fixed.DecodeWide(acc+int64(fixed.Encode(bias, frac)), frac), nil
}

// Sigmoid is the logistic activation applied CPU-side to a raw
// prediction. The accelerator computes only the affine part.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func mustEncode(vals []float64, frac uint) []int32 {
	if vals == nil {
		return nil // let DotFixed report the absent operand
	}
	out := make([]int32, len(vals))
	for i, v := range vals {
		out[i] = fixed.Encode(v, frac)
	}
	return out
}
