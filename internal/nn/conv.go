package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Conv1D slides F filters of width K over a (T × D) input, producing a
// ((T−K+1) × F) activation map. Input windows are unrolled im2col-style so
// the whole layer is a single matrix multiply. The input must have at least
// K rows.
type Conv1D struct {
	W *Param // (K·D × F)
	B *Param // (1 × F)

	kernel, dim, filters int
	cols                 *mat.Dense // unrolled input cached by Forward
}

// NewConv1D returns a Glorot-initialized convolution layer.
func NewConv1D(dim, filters, kernel int, rng *rand.Rand) *Conv1D {
	return &Conv1D{
		W:       NewParam(kernel*dim, filters, rng),
		B:       NewZeroParam(1, filters),
		kernel:  kernel,
		dim:     dim,
		filters: filters,
	}
}

// Forward computes the pre-activation map and caches the unrolled input.
func (c *Conv1D) Forward(x *mat.Dense) *mat.Dense {
	t, _ := x.Dims()
	n := t - c.kernel + 1
	cols := mat.NewDense(n, c.kernel*c.dim, nil)
	for i := 0; i < n; i++ {
		row := cols.RawRowView(i)
		for k := 0; k < c.kernel; k++ {
			copy(row[k*c.dim:(k+1)*c.dim], x.RawRowView(i+k))
		}
	}
	c.cols = cols

	var y mat.Dense
	y.Mul(cols, c.W.Value)
	for i := 0; i < n; i++ {
		for j := 0; j < c.filters; j++ {
			y.Set(i, j, y.At(i, j)+c.B.Value.At(0, j))
		}
	}
	return &y
}

// Backward accumulates dW and db. No input gradient is produced: the layer
// below is the frozen embedding lookup.
func (c *Conv1D) Backward(dy *mat.Dense) {
	var dw mat.Dense
	dw.Mul(c.cols.T(), dy)
	c.W.Grad.Add(c.W.Grad, &dw)

	n, _ := dy.Dims()
	for j := 0; j < c.filters; j++ {
		sum := c.B.Grad.At(0, j)
		for i := 0; i < n; i++ {
			sum += dy.At(i, j)
		}
		c.B.Grad.Set(0, j, sum)
	}
}

// Params returns the layer's trainable tensors.
func (c *Conv1D) Params() []*Param {
	return []*Param{c.W, c.B}
}

// globalMaxPool reduces an (n × F) activation map to the per-filter maxima,
// recording the argmax rows for the backward scatter.
type globalMaxPool struct {
	argmax []int
	rows   int
}

func (p *globalMaxPool) Forward(y *mat.Dense) []float64 {
	n, f := y.Dims()
	p.rows = n
	p.argmax = make([]int, f)
	out := make([]float64, f)
	for j := 0; j < f; j++ {
		best, bestRow := y.At(0, j), 0
		for i := 1; i < n; i++ {
			if v := y.At(i, j); v > best {
				best, bestRow = v, i
			}
		}
		out[j] = best
		p.argmax[j] = bestRow
	}
	return out
}

func (p *globalMaxPool) Backward(dv []float64) *mat.Dense {
	dy := mat.NewDense(p.rows, len(dv), nil)
	for j, i := range p.argmax {
		dy.Set(i, j, dv[j])
	}
	return dy
}

// reluMatInPlace zeroes negative entries of m, returning a row-major mask
// of the positions that passed.
func reluMatInPlace(m *mat.Dense) []bool {
	r, c := m.Dims()
	mask := make([]bool, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) > 0 {
				mask[i*c+j] = true
			} else {
				m.Set(i, j, 0)
			}
		}
	}
	return mask
}

// applyMask zeroes entries of m whose mask position did not pass.
func applyMask(m *mat.Dense, mask []bool) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !mask[i*c+j] {
				m.Set(i, j, 0)
			}
		}
	}
}
