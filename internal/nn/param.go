package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Param is one trainable tensor together with its accumulated gradient.
type Param struct {
	Value *mat.Dense
	Grad  *mat.Dense
}

// NewParam returns a Glorot-uniform initialized parameter of the given
// shape with a zero gradient.
func NewParam(rows, cols int, rng *rand.Rand) *Param {
	limit := math.Sqrt(6 / float64(rows+cols))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * limit
	}
	return &Param{
		Value: mat.NewDense(rows, cols, data),
		Grad:  mat.NewDense(rows, cols, nil),
	}
}

// NewZeroParam returns a zero-initialized parameter, used for biases.
func NewZeroParam(rows, cols int) *Param {
	return &Param{
		Value: mat.NewDense(rows, cols, nil),
		Grad:  mat.NewDense(rows, cols, nil),
	}
}

// ZeroGrad clears the accumulated gradient.
func (p *Param) ZeroGrad() {
	p.Grad.Zero()
}

// ScaleGrads multiplies every accumulated gradient by s, typically
// 1/batchSize after a batch of per-example backward passes.
func ScaleGrads(params []*Param, s float64) {
	for _, p := range params {
		p.Grad.Scale(s, p.Grad)
	}
}
