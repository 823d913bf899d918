package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// LSTMConfig sizes the recurrent classifier.
type LSTMConfig struct {
	Hidden  int // LSTM hidden state width
	Classes int
}

// LSTMClassifier reads the sequence with an LSTM and classifies from the
// final hidden state.
type LSTMClassifier struct {
	lookup *Lookup
	lstm   *LSTM
	out    *Linear
}

// NewLSTMClassifier builds the model over a pretrained embedding matrix,
// which is used read-only.
func NewLSTMClassifier(embeddings *mat.Dense, cfg LSTMConfig, rng *rand.Rand) *LSTMClassifier {
	lookup := NewLookup(embeddings)
	return &LSTMClassifier{
		lookup: lookup,
		lstm:   NewLSTM(lookup.Dim(), cfg.Hidden, rng),
		out:    NewLinear(cfg.Hidden, cfg.Classes, rng),
	}
}

// Name implements Model.
func (m *LSTMClassifier) Name() string { return "lstm" }

// Forward implements Model.
func (m *LSTMClassifier) Forward(ids []int) []float64 {
	h := m.lstm.Forward(m.lookup.Embed(ids))
	return m.out.Forward(h)
}

// Backward implements Model.
func (m *LSTMClassifier) Backward(dscores []float64) {
	m.lstm.Backward(m.out.Backward(dscores))
}

// Params implements Model.
func (m *LSTMClassifier) Params() []*Param {
	return append(m.lstm.Params(), m.out.Params()...)
}
