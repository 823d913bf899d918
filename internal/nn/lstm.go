package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// LSTM runs a single-layer LSTM over a (T × D) input sequence and exposes
// the final hidden state. Gate order in the packed weight matrices is
// input, forget, cell, output. Forward stores per-step activations so
// Backward can run full backpropagation through time.
type LSTM struct {
	Wx *Param // (D × 4H)
	Wh *Param // (H × 4H)
	B  *Param // (1 × 4H)

	dim, hidden int

	x     *mat.Dense
	steps []lstmStep
}

// lstmStep caches one timestep's activations.
type lstmStep struct {
	i, f, g, o []float64
	c, tanhC   []float64
	hPrev      []float64
	cPrev      []float64
}

// NewLSTM returns a Glorot-initialized LSTM layer. The forget-gate bias
// starts at 1 so early training does not wash out the cell state.
func NewLSTM(dim, hidden int, rng *rand.Rand) *LSTM {
	l := &LSTM{
		Wx:     NewParam(dim, 4*hidden, rng),
		Wh:     NewParam(hidden, 4*hidden, rng),
		B:      NewZeroParam(1, 4*hidden),
		dim:    dim,
		hidden: hidden,
	}
	for j := hidden; j < 2*hidden; j++ {
		l.B.Value.Set(0, j, 1)
	}
	return l
}

// Forward consumes the full sequence and returns the final hidden state.
func (l *LSTM) Forward(x *mat.Dense) []float64 {
	t, _ := x.Dims()
	h := l.hidden
	l.x = x
	l.steps = l.steps[:0]

	hState := make([]float64, h)
	cState := make([]float64, h)
	z := make([]float64, 4*h)

	for step := 0; step < t; step++ {
		xt := x.RawRowView(step)

		// z = xt·Wx + h·Wh + b. Padding rows are all-zero, so their input
		// contribution is skipped entirely.
		copy(z, l.B.Value.RawRowView(0))
		for i, v := range xt {
			if v == 0 {
				continue
			}
			row := l.Wx.Value.RawRowView(i)
			for j := range z {
				z[j] += v * row[j]
			}
		}
		for i, v := range hState {
			if v == 0 {
				continue
			}
			row := l.Wh.Value.RawRowView(i)
			for j := range z {
				z[j] += v * row[j]
			}
		}

		s := lstmStep{
			i: make([]float64, h), f: make([]float64, h),
			g: make([]float64, h), o: make([]float64, h),
			c: make([]float64, h), tanhC: make([]float64, h),
			hPrev: append([]float64(nil), hState...),
			cPrev: append([]float64(nil), cState...),
		}
		for j := 0; j < h; j++ {
			s.i[j] = sigmoid(z[j])
			s.f[j] = sigmoid(z[h+j])
			s.g[j] = math.Tanh(z[2*h+j])
			s.o[j] = sigmoid(z[3*h+j])
			s.c[j] = s.f[j]*cState[j] + s.i[j]*s.g[j]
			s.tanhC[j] = math.Tanh(s.c[j])
		}
		for j := 0; j < h; j++ {
			cState[j] = s.c[j]
			hState[j] = s.o[j] * s.tanhC[j]
		}
		l.steps = append(l.steps, s)
	}
	return append([]float64(nil), hState...)
}

// Backward propagates the gradient of the final hidden state back through
// every timestep, accumulating dWx, dWh and db. No input gradient is
// produced: the layer below is the frozen embedding lookup.
func (l *LSTM) Backward(dhFinal []float64) {
	h := l.hidden
	dh := append([]float64(nil), dhFinal...)
	dc := make([]float64, h)
	dz := make([]float64, 4*h)

	for step := len(l.steps) - 1; step >= 0; step-- {
		s := &l.steps[step]
		for j := 0; j < h; j++ {
			do := dh[j] * s.tanhC[j]
			dcj := dc[j] + dh[j]*s.o[j]*(1-s.tanhC[j]*s.tanhC[j])
			di := dcj * s.g[j]
			dg := dcj * s.i[j]
			df := dcj * s.cPrev[j]
			dc[j] = dcj * s.f[j]

			dz[j] = di * s.i[j] * (1 - s.i[j])
			dz[h+j] = df * s.f[j] * (1 - s.f[j])
			dz[2*h+j] = dg * (1 - s.g[j]*s.g[j])
			dz[3*h+j] = do * s.o[j] * (1 - s.o[j])
		}

		xt := l.x.RawRowView(step)
		for i, v := range xt {
			if v == 0 {
				continue
			}
			grow := l.Wx.Grad.RawRowView(i)
			for j := range dz {
				grow[j] += v * dz[j]
			}
		}
		for i, v := range s.hPrev {
			if v == 0 {
				continue
			}
			grow := l.Wh.Grad.RawRowView(i)
			for j := range dz {
				grow[j] += v * dz[j]
			}
		}
		brow := l.B.Grad.RawRowView(0)
		for j := range dz {
			brow[j] += dz[j]
		}

		// dhPrev = Wh · dz
		for i := 0; i < h; i++ {
			row := l.Wh.Value.RawRowView(i)
			sum := 0.0
			for j := range dz {
				sum += row[j] * dz[j]
			}
			dh[i] = sum
		}
	}
}

// Params returns the layer's trainable tensors.
func (l *LSTM) Params() []*Param {
	return []*Param{l.Wx, l.Wh, l.B}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
