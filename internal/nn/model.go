package nn

// Model is a classifier over fixed-length token id sequences. Forward and
// Backward share per-call state, so a Model must not be used from more than
// one goroutine.
type Model interface {
	// Forward returns unnormalized class scores for one encoded sequence,
	// caching intermediate activations for Backward.
	Forward(ids []int) []float64
	// Backward accumulates parameter gradients given the loss gradient with
	// respect to the scores returned by the preceding Forward call.
	Backward(dscores []float64)
	// Params returns every trainable tensor.
	Params() []*Param
	// Name identifies the architecture in logs and reports.
	Name() string
}
