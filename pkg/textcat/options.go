package textcat

type options struct {
	corpusDir      string
	embeddingsPath string

	maxWords     int
	maxLen       int
	testFraction float64
	valFraction  float64
	seed         int64

	epochs       int
	batchSize    int
	learningRate float64

	filters int
	kernel  int
	dense   int
	hidden  int

	models []string
}

// Option configures an Experiment.
type Option func(*options)

// WithCorpusDir sets the corpus root: one subdirectory per class, one
// posting per numerically named file.
func WithCorpusDir(dir string) Option {
	return func(o *options) { o.corpusDir = dir }
}

// WithEmbeddings sets the path of the pretrained embedding file.
func WithEmbeddings(path string) Option {
	return func(o *options) { o.embeddingsPath = path }
}

// WithMaxWords caps the vocabulary at the n most frequent tokens.
// Default: 20000.
func WithMaxWords(n int) Option {
	return func(o *options) { o.maxWords = n }
}

// WithMaxLen sets the fixed encoded sequence length. Default: 1000.
func WithMaxLen(n int) Option {
	return func(o *options) { o.maxLen = n }
}

// WithSplit sets the test and validation fractions. Default: 0.2 each.
func WithSplit(test, val float64) Option {
	return func(o *options) {
		o.testFraction = test
		o.valFraction = val
	}
}

// WithSeed fixes the shuffling and weight-initialization seed so runs are
// reproducible. Default: 42.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithEpochs sets the number of training epochs. Default: 10.
func WithEpochs(n int) Option {
	return func(o *options) { o.epochs = n }
}

// WithBatchSize sets the mini-batch size. Default: 128.
func WithBatchSize(n int) Option {
	return func(o *options) { o.batchSize = n }
}

// WithLearningRate sets the Adam learning rate. Default: 1e-3.
func WithLearningRate(lr float64) Option {
	return func(o *options) { o.learningRate = lr }
}

// WithModels selects which architectures to run, in order: "cnn", "lstm".
// Default: both.
func WithModels(names ...string) Option {
	return func(o *options) { o.models = names }
}

// WithCNNShape sizes the convolutional classifier: filter count,
// convolution window and hidden dense width. Default: 128, 5, 128.
func WithCNNShape(filters, kernel, dense int) Option {
	return func(o *options) {
		o.filters = filters
		o.kernel = kernel
		o.dense = dense
	}
}

// WithLSTMHidden sizes the LSTM hidden state. Default: 128.
func WithLSTMHidden(hidden int) Option {
	return func(o *options) { o.hidden = hidden }
}

func defaultOptions() options {
	return options{
		corpusDir:      "data/20_newsgroup",
		embeddingsPath: "data/glove.6B.100d.txt",
		maxWords:       20000,
		maxLen:         1000,
		testFraction:   0.2,
		valFraction:    0.2,
		seed:           42,
		epochs:         10,
		batchSize:      128,
		learningRate:   1e-3,
		filters:        128,
		kernel:         5,
		dense:          128,
		hidden:         128,
		models:         []string{"cnn", "lstm"},
	}
}
