package nn

import "gonum.org/v1/gonum/mat"

// Lookup maps a padded id sequence to its (seqLen × dim) embedding matrix.
// The rows come from the pretrained embedding matrix and are frozen: Lookup
// has no trainable parameters and no backward pass.
type Lookup struct {
	weights *mat.Dense
	dim     int
}

// NewLookup wraps a pretrained embedding matrix, used read-only.
func NewLookup(weights *mat.Dense) *Lookup {
	_, dim := weights.Dims()
	return &Lookup{weights: weights, dim: dim}
}

// Dim returns the embedding dimension.
func (l *Lookup) Dim() int {
	return l.dim
}

// Embed builds the (len(ids) × dim) input matrix for one sequence. Id 0 is
// the padding sentinel; its row stays all-zero.
func (l *Lookup) Embed(ids []int) *mat.Dense {
	out := mat.NewDense(len(ids), l.dim, nil)
	for t, id := range ids {
		if id == 0 {
			continue
		}
		out.SetRow(t, l.weights.RawRowView(id))
	}
	return out
}
