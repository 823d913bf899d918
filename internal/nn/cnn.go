package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// CNNConfig sizes the convolutional classifier.
type CNNConfig struct {
	Filters int // convolution filters
	Kernel  int // convolution window, in tokens
	Dense   int // hidden dense layer width
	Classes int
}

// TextCNN is the convolutional classifier: frozen pretrained embeddings →
// Conv1D → ReLU → global max pool over time → dense ReLU layer → class
// scores. Sequences must be at least Kernel tokens long (padding included).
type TextCNN struct {
	lookup *Lookup
	conv   *Conv1D
	pool   globalMaxPool
	hidden *Linear
	act    ReLU
	out    *Linear

	convMask []bool
}

// NewTextCNN builds the model over a pretrained embedding matrix, which is
// used read-only.
func NewTextCNN(embeddings *mat.Dense, cfg CNNConfig, rng *rand.Rand) *TextCNN {
	lookup := NewLookup(embeddings)
	return &TextCNN{
		lookup: lookup,
		conv:   NewConv1D(lookup.Dim(), cfg.Filters, cfg.Kernel, rng),
		hidden: NewLinear(cfg.Filters, cfg.Dense, rng),
		out:    NewLinear(cfg.Dense, cfg.Classes, rng),
	}
}

// Name implements Model.
func (m *TextCNN) Name() string { return "cnn" }

// Forward implements Model.
func (m *TextCNN) Forward(ids []int) []float64 {
	x := m.lookup.Embed(ids)
	y := m.conv.Forward(x)
	m.convMask = reluMatInPlace(y)
	v := m.pool.Forward(y)
	h := m.act.Forward(m.hidden.Forward(v))
	return m.out.Forward(h)
}

// Backward implements Model.
func (m *TextCNN) Backward(dscores []float64) {
	dh := m.act.Backward(m.out.Backward(dscores))
	dv := m.hidden.Backward(dh)
	dy := m.pool.Backward(dv)
	applyMask(dy, m.convMask)
	m.conv.Backward(dy)
}

// Params implements Model.
func (m *TextCNN) Params() []*Param {
	params := m.conv.Params()
	params = append(params, m.hidden.Params()...)
	return append(params, m.out.Params()...)
}
