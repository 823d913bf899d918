package eval

import (
	"math"
	"testing"

	"github.com/crimson-sun/textcat/internal/model"
	"github.com/crimson-sun/textcat/internal/nn"
)

// fixedModel predicts the class given by the first token id of each
// sequence, with near-one confidence.
type fixedModel struct {
	classes int
}

func (m *fixedModel) Forward(ids []int) []float64 {
	scores := make([]float64, m.classes)
	scores[ids[0]%m.classes] = 10
	return scores
}

func (m *fixedModel) Backward([]float64)  {}
func (m *fixedModel) Params() []*nn.Param { return nil }
func (m *fixedModel) Name() string        { return "fixed" }

func batchesOf(samples []model.Sample, size int) [][]model.Sample {
	var out [][]model.Sample
	for i := 0; i < len(samples); i += size {
		end := i + size
		if end > len(samples) {
			end = len(samples)
		}
		out = append(out, samples[i:end])
	}
	return out
}

func TestEvaluate(t *testing.T) {
	samples := []model.Sample{
		{IDs: []int{0}, Label: 0}, // correct
		{IDs: []int{1}, Label: 1}, // correct
		{IDs: []int{2}, Label: 0}, // predicted 2
		{IDs: []int{1}, Label: 1}, // correct
	}
	batches := batchesOf(samples, 2)
	res := Evaluate(&fixedModel{classes: 3}, batches)

	if res.Total != 4 {
		t.Fatalf("expected 4 examples, got %d", res.Total)
	}
	if res.Correct != 3 {
		t.Errorf("expected 3 correct, got %d", res.Correct)
	}
	if math.Abs(res.Accuracy-75) > 1e-9 {
		t.Errorf("expected 75%% accuracy, got %g", res.Accuracy)
	}
	if got := res.Predictions; len(got) != 4 || got[0] != 0 || got[1] != 1 || got[2] != 2 || got[3] != 1 {
		t.Errorf("unexpected predictions %v", got)
	}
}

func TestEvaluateMeanLossPerBatch(t *testing.T) {
	samples := []model.Sample{
		{IDs: []int{0}, Label: 0},
		{IDs: []int{1}, Label: 1},
		{IDs: []int{2}, Label: 2},
	}
	m := &fixedModel{classes: 3}

	// Same examples, different batch counts: the per-batch divisor must
	// change the reported mean.
	one := Evaluate(m, batchesOf(samples, 3))
	three := Evaluate(m, batchesOf(samples, 1))
	if math.Abs(one.MeanLoss-3*three.MeanLoss) > 1e-9 {
		t.Errorf("mean loss should divide by batch count: 1 batch %g, 3 batches %g",
			one.MeanLoss, three.MeanLoss)
	}
}

func TestEvaluateEmpty(t *testing.T) {
	res := Evaluate(&fixedModel{classes: 2}, nil)
	if res.Total != 0 || res.MeanLoss != 0 || res.Accuracy != 0 {
		t.Errorf("expected zero result, got %+v", res)
	}
}

func TestConfusionInvariants(t *testing.T) {
	truth := []int{0, 0, 1, 1, 1, 2}
	preds := []int{0, 1, 1, 1, 0, 2}
	cm := Confusion(truth, preds, 3)

	// Row sums equal true-class counts.
	wantRows := []int{2, 3, 1}
	diag := 0
	for i, row := range cm {
		sum := 0
		for _, v := range row {
			sum += v
		}
		if sum != wantRows[i] {
			t.Errorf("row %d sums to %d, want %d", i, sum, wantRows[i])
		}
		diag += row[i]
	}
	// Diagonal equals the total correct count.
	if diag != 4 {
		t.Errorf("diagonal sums to %d, want 4", diag)
	}
}

func TestPerClassAccuracy(t *testing.T) {
	cm := [][]int{
		{2, 0, 0},
		{1, 2, 0},
		{0, 0, 0}, // no true instances
	}
	acc := PerClassAccuracy(cm)
	if acc[0] != 1 {
		t.Errorf("class 0 accuracy = %g, want 1", acc[0])
	}
	if math.Abs(acc[1]-2.0/3.0) > 1e-9 {
		t.Errorf("class 1 accuracy = %g, want 2/3", acc[1])
	}
	if acc[2] != 0 {
		t.Errorf("class 2 accuracy = %g, want 0", acc[2])
	}
}

func TestLabels(t *testing.T) {
	batches := batchesOf([]model.Sample{
		{IDs: []int{0}, Label: 2},
		{IDs: []int{0}, Label: 0},
		{IDs: []int{0}, Label: 1},
	}, 2)
	got := Labels(batches)
	want := []int{2, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Labels = %v, want %v", got, want)
		}
	}
}
