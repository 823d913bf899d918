package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SoftmaxCrossEntropy returns the cross-entropy loss of unnormalized class
// scores against the true label, together with the gradient with respect to
// the scores (softmax probabilities minus the one-hot target). The softmax
// is computed with the max-shift so large scores cannot overflow.
func SoftmaxCrossEntropy(scores []float64, label int) (float64, []float64) {
	shift := floats.Max(scores)
	grad := make([]float64, len(scores))
	sum := 0.0
	for i, v := range scores {
		grad[i] = math.Exp(v - shift)
		sum += grad[i]
	}
	for i := range grad {
		grad[i] /= sum
	}
	loss := -math.Log(grad[label] + 1e-15)
	grad[label] -= 1
	return loss, grad
}

// Argmax returns the index of the highest score.
func Argmax(scores []float64) int {
	return floats.MaxIdx(scores)
}
