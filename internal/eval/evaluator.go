// Package eval runs inference over batched datasets and aggregates
// loss/accuracy metrics, the confusion matrix and per-class accuracy.
package eval

import (
	"github.com/crimson-sun/textcat/internal/model"
	"github.com/crimson-sun/textcat/internal/nn"
)

// Result holds aggregate metrics for one evaluated dataset.
type Result struct {
	MeanLoss    float64 // summed loss divided by the number of batches
	Accuracy    float64 // percent of examples whose argmax matched the label
	Correct     int
	Total       int
	Predictions []int // one predicted label per example, in input order
}

// Evaluate runs inference over every batch, accumulating summed loss and
// argmax correctness. The reported mean loss is per batch, not per example:
// the total is divided by this dataset's batch count.
func Evaluate(m nn.Model, batches [][]model.Sample) Result {
	res := Result{}
	totalLoss := 0.0
	for _, batch := range batches {
		for _, s := range batch {
			scores := m.Forward(s.IDs)
			loss, _ := nn.SoftmaxCrossEntropy(scores, s.Label)
			totalLoss += loss

			pred := nn.Argmax(scores)
			res.Predictions = append(res.Predictions, pred)
			if pred == s.Label {
				res.Correct++
			}
			res.Total++
		}
	}
	if len(batches) > 0 {
		res.MeanLoss = totalLoss / float64(len(batches))
	}
	if res.Total > 0 {
		res.Accuracy = float64(res.Correct) / float64(res.Total) * 100
	}
	return res
}

// Confusion builds the n×n count table over an evaluated set: rows are true
// classes, columns predicted classes.
func Confusion(truth, preds []int, n int) [][]int {
	cm := make([][]int, n)
	for i := range cm {
		cm[i] = make([]int, n)
	}
	for i, label := range truth {
		cm[label][preds[i]]++
	}
	return cm
}

// Labels extracts the true labels of a batched dataset in iteration order,
// for pairing with Result.Predictions.
func Labels(batches [][]model.Sample) []int {
	var out []int
	for _, batch := range batches {
		for _, s := range batch {
			out = append(out, s.Label)
		}
	}
	return out
}

// PerClassAccuracy returns diagonal/row-sum for each class. Classes with no
// true instances report zero.
func PerClassAccuracy(cm [][]int) []float64 {
	out := make([]float64, len(cm))
	for i, row := range cm {
		total := 0
		for _, v := range row {
			total += v
		}
		if total > 0 {
			out[i] = float64(row[i]) / float64(total)
		}
	}
	return out
}
