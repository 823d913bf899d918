package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Linear is a fully connected layer, y = Wᵀx + b.
type Linear struct {
	W *Param // (in × out)
	B *Param // (1 × out)

	x *mat.VecDense // input cached by Forward
}

// NewLinear returns a Glorot-initialized dense layer.
func NewLinear(in, out int, rng *rand.Rand) *Linear {
	return &Linear{
		W: NewParam(in, out, rng),
		B: NewZeroParam(1, out),
	}
}

// Forward computes the layer output and caches the input for Backward.
func (l *Linear) Forward(x []float64) []float64 {
	_, out := l.W.Value.Dims()
	l.x = mat.NewVecDense(len(x), append([]float64(nil), x...))

	y := mat.NewVecDense(out, nil)
	y.MulVec(l.W.Value.T(), l.x)
	for j := 0; j < out; j++ {
		y.SetVec(j, y.AtVec(j)+l.B.Value.At(0, j))
	}
	return y.RawVector().Data
}

// Backward accumulates dW and db and returns the gradient with respect to
// the input of the preceding Forward call.
func (l *Linear) Backward(dy []float64) []float64 {
	in, out := l.W.Value.Dims()
	dyv := mat.NewVecDense(out, dy)

	var dw mat.Dense
	dw.Outer(1, l.x, dyv)
	l.W.Grad.Add(l.W.Grad, &dw)
	for j := 0; j < out; j++ {
		l.B.Grad.Set(0, j, l.B.Grad.At(0, j)+dy[j])
	}

	dx := mat.NewVecDense(in, nil)
	dx.MulVec(l.W.Value, dyv)
	return dx.RawVector().Data
}

// Params returns the layer's trainable tensors.
func (l *Linear) Params() []*Param {
	return []*Param{l.W, l.B}
}

// ReLU clamps negatives to zero, remembering which positions passed for the
// backward pass.
type ReLU struct {
	mask []bool
}

// Forward returns max(0, x) elementwise.
func (r *ReLU) Forward(x []float64) []float64 {
	out := make([]float64, len(x))
	r.mask = make([]bool, len(x))
	for i, v := range x {
		if v > 0 {
			out[i] = v
			r.mask[i] = true
		}
	}
	return out
}

// Backward zeroes the gradient where the activation was clamped.
func (r *ReLU) Backward(dy []float64) []float64 {
	dx := make([]float64, len(dy))
	for i, pass := range r.mask {
		if pass {
			dx[i] = dy[i]
		}
	}
	return dx
}
