package textcat

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/crimson-sun/textcat/internal/corpus"
	"github.com/crimson-sun/textcat/internal/dataset"
	"github.com/crimson-sun/textcat/internal/embedding"
	"github.com/crimson-sun/textcat/internal/eval"
	"github.com/crimson-sun/textcat/internal/model"
	"github.com/crimson-sun/textcat/internal/nn"
	"github.com/crimson-sun/textcat/internal/text"
	"github.com/crimson-sun/textcat/internal/train"
)

// Experiment is one configured train-and-evaluate run.
type Experiment struct {
	opts options
}

// New validates the options and returns a runnable Experiment.
func New(opts ...Option) (*Experiment, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.maxWords < 2 {
		return nil, fmt.Errorf("textcat: max words must be at least 2, got %d", o.maxWords)
	}
	if o.maxLen < o.kernel {
		return nil, fmt.Errorf("textcat: max length %d is shorter than the convolution kernel %d",
			o.maxLen, o.kernel)
	}
	if o.testFraction < 0 || o.valFraction < 0 || o.testFraction+o.valFraction >= 1 {
		return nil, fmt.Errorf("textcat: test/val fractions %g+%g leave no training data",
			o.testFraction, o.valFraction)
	}
	if o.learningRate <= 0 {
		return nil, fmt.Errorf("textcat: learning rate must be positive, got %g", o.learningRate)
	}
	if len(o.models) == 0 {
		return nil, fmt.Errorf("textcat: no models selected")
	}
	for _, name := range o.models {
		if name != "cnn" && name != "lstm" {
			return nil, fmt.Errorf("textcat: unknown model %q", name)
		}
	}
	return &Experiment{opts: o}, nil
}

// Run executes the whole pipeline: load embeddings and corpus, build the
// vocabulary, encode and split the dataset, then train and evaluate each
// selected model in turn.
func (e *Experiment) Run() (*Results, error) {
	o := e.opts

	tbl, err := embedding.LoadTable(o.embeddingsPath)
	if err != nil {
		return nil, err
	}
	slog.Info("embeddings loaded", "tokens", tbl.Len(), "dim", tbl.Dim())

	docs, labels, err := corpus.Load(o.corpusDir)
	if err != nil {
		return nil, err
	}
	slog.Info("corpus loaded", "documents", len(docs), "classes", labels.Len())

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	vocab := text.BuildVocab(texts, o.maxWords)

	samples := make([]model.Sample, len(docs))
	for i, d := range docs {
		samples[i] = model.Sample{IDs: vocab.Encode(d.Text, o.maxLen), Label: d.Label}
	}

	testCount := int(float64(len(samples)) * o.testFraction)
	valCount := int(float64(len(samples)) * o.valFraction)
	split, err := dataset.New(samples, testCount, valCount, o.seed)
	if err != nil {
		return nil, err
	}

	matrix, missing := embedding.BuildMatrix(tbl, vocab.Index(), o.maxWords)
	slog.Info("dataset prepared",
		"vocab", vocab.Len(),
		"missing_embeddings", missing,
		"train", len(split.Train),
		"val", len(split.Val),
		"test", len(split.Test),
	)

	results := &Results{
		Classes:           labels.Names(),
		Documents:         len(docs),
		VocabSize:         vocab.Len(),
		MissingEmbeddings: missing,
	}

	for _, name := range o.models {
		rng := rand.New(rand.NewSource(o.seed))
		var m nn.Model
		switch name {
		case "cnn":
			m = nn.NewTextCNN(matrix, nn.CNNConfig{
				Filters: o.filters,
				Kernel:  o.kernel,
				Dense:   o.dense,
				Classes: labels.Len(),
			}, rng)
		case "lstm":
			m = nn.NewLSTMClassifier(matrix, nn.LSTMConfig{
				Hidden:  o.hidden,
				Classes: labels.Len(),
			}, rng)
		}

		trainer := &train.Trainer{
			Epochs:    o.epochs,
			BatchSize: o.batchSize,
			Seed:      o.seed,
			Optimizer: nn.NewAdam(o.learningRate),
		}
		history, err := trainer.Fit(m, split.Train, split.Val)
		if err != nil {
			return nil, err
		}

		testBatches := dataset.Batches(split.Test, o.batchSize)
		testRes := eval.Evaluate(m, testBatches)
		cm := eval.Confusion(eval.Labels(testBatches), testRes.Predictions, labels.Len())
		slog.Info("test evaluation",
			"model", name,
			"loss", testRes.MeanLoss,
			"accuracy", testRes.Accuracy,
		)

		results.Models = append(results.Models, buildModelResult(name, history, testRes, cm, labels.Names()))
	}
	return results, nil
}

func buildModelResult(name string, history []train.EpochStats, testRes eval.Result, cm [][]int, classes []string) ModelResult {
	mr := ModelResult{
		Name: name,
		Test: TestMetrics{
			MeanLoss: testRes.MeanLoss,
			Accuracy: testRes.Accuracy,
		},
		Confusion: cm,
	}
	for _, s := range history {
		mr.History = append(mr.History, EpochMetrics{
			Epoch:         s.Epoch,
			TrainLoss:     s.TrainLoss,
			TrainAccuracy: s.TrainAcc,
			ValLoss:       s.ValLoss,
			ValAccuracy:   s.ValAcc,
		})
	}
	perClass := eval.PerClassAccuracy(cm)
	for i, name := range classes {
		total := 0
		for _, v := range cm[i] {
			total += v
		}
		mr.PerClass = append(mr.PerClass, ClassAccuracy{
			Name:     name,
			Correct:  cm[i][i],
			Total:    total,
			Accuracy: perClass[i] * 100,
		})
	}
	return mr
}
