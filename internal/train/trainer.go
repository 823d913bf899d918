// Package train runs mini-batch gradient descent over an encoded training
// set, epoch by epoch, evaluating on the validation set after each epoch.
package train

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/crimson-sun/textcat/internal/dataset"
	"github.com/crimson-sun/textcat/internal/eval"
	"github.com/crimson-sun/textcat/internal/model"
	"github.com/crimson-sun/textcat/internal/nn"
)

// EpochStats records the metrics logged after each training epoch. Losses
// are per batch, matching the evaluator.
type EpochStats struct {
	Epoch     int
	TrainLoss float64
	TrainAcc  float64
	ValLoss   float64
	ValAcc    float64
}

// Trainer drives the optimization loop. Single-threaded: batches are
// processed strictly in order, one example at a time.
type Trainer struct {
	Epochs    int
	BatchSize int
	Seed      int64
	Optimizer *nn.Adam
}

// Fit trains m on the training set, reshuffling it each epoch with the
// trainer's seeded rng, and evaluates on val after every epoch. Returns the
// per-epoch history.
func (t *Trainer) Fit(m nn.Model, train, val []model.Sample) ([]EpochStats, error) {
	if len(train) == 0 {
		return nil, fmt.Errorf("train: empty training set")
	}
	if t.Epochs <= 0 {
		return nil, fmt.Errorf("train: epochs must be positive, got %d", t.Epochs)
	}

	rng := rand.New(rand.NewSource(t.Seed))
	data := make([]model.Sample, len(train))
	copy(data, train)

	history := make([]EpochStats, 0, t.Epochs)
	for epoch := 1; epoch <= t.Epochs; epoch++ {
		dataset.Shuffle(data, rng)

		totalLoss := 0.0
		correct := 0
		batches := dataset.Batches(data, t.BatchSize)
		for _, batch := range batches {
			for _, p := range m.Params() {
				p.ZeroGrad()
			}
			for _, s := range batch {
				scores := m.Forward(s.IDs)
				loss, dscores := nn.SoftmaxCrossEntropy(scores, s.Label)
				totalLoss += loss
				if nn.Argmax(scores) == s.Label {
					correct++
				}
				m.Backward(dscores)
			}
			nn.ScaleGrads(m.Params(), 1/float64(len(batch)))
			t.Optimizer.Step(m.Params())
		}

		stats := EpochStats{
			Epoch:     epoch,
			TrainLoss: totalLoss / float64(len(batches)),
			TrainAcc:  float64(correct) / float64(len(data)) * 100,
		}
		if len(val) > 0 {
			res := eval.Evaluate(m, dataset.Batches(val, t.BatchSize))
			stats.ValLoss = res.MeanLoss
			stats.ValAcc = res.Accuracy
		}
		history = append(history, stats)

		slog.Info("epoch complete",
			"model", m.Name(),
			"epoch", epoch,
			"train_loss", stats.TrainLoss,
			"train_acc", stats.TrainAcc,
			"val_loss", stats.ValLoss,
			"val_acc", stats.ValAcc,
		)
	}
	return history, nil
}
