package textcat

// Results holds everything measured during an Experiment run.
type Results struct {
	Classes           []string // class names in label-id order
	Documents         int
	VocabSize         int // distinct tokens seen, before the cap
	MissingEmbeddings int // in-vocabulary tokens without a pretrained vector

	Models []ModelResult
}

// ModelResult bundles training history and test metrics for one
// architecture.
type ModelResult struct {
	Name      string
	History   []EpochMetrics
	Test      TestMetrics
	Confusion [][]int // rows true class, columns predicted class
	PerClass  []ClassAccuracy
}

// EpochMetrics records one training epoch. Losses are per batch.
type EpochMetrics struct {
	Epoch         int
	TrainLoss     float64
	TrainAccuracy float64 // percent
	ValLoss       float64
	ValAccuracy   float64 // percent
}

// TestMetrics summarizes held-out evaluation.
type TestMetrics struct {
	MeanLoss float64 // summed loss divided by the test batch count
	Accuracy float64 // percent
}

// ClassAccuracy is one class's row of the per-class report.
type ClassAccuracy struct {
	Name     string
	Correct  int
	Total    int     // true instances in the evaluated set
	Accuracy float64 // percent; zero when Total is zero
}
