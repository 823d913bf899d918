// Package config holds the experiment configuration: a YAML file with
// defaults, overridable through TEXTCAT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the root experiment configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Model    ModelConfig    `yaml:"model"`
	Training TrainingConfig `yaml:"training"`
	LogLevel string         `yaml:"log_level"`
	LogJSON  bool           `yaml:"log_json"`
}

// DataConfig locates the corpus and embeddings and sizes the encoding.
type DataConfig struct {
	CorpusDir      string  `yaml:"corpus_dir"`
	EmbeddingsPath string  `yaml:"embeddings_path"`
	MaxWords       int     `yaml:"max_words"`
	MaxLen         int     `yaml:"max_len"`
	TestFraction   float64 `yaml:"test_fraction"`
	ValFraction    float64 `yaml:"val_fraction"`
	Seed           int64   `yaml:"seed"`
}

// ModelConfig sizes the two architectures.
type ModelConfig struct {
	Filters int `yaml:"filters"` // cnn convolution filters
	Kernel  int `yaml:"kernel"`  // cnn convolution window
	Dense   int `yaml:"dense"`   // cnn hidden dense width
	Hidden  int `yaml:"hidden"`  // lstm hidden state width
}

// TrainingConfig controls the optimization loop.
type TrainingConfig struct {
	Epochs       int     `yaml:"epochs"`
	BatchSize    int     `yaml:"batch_size"`
	LearningRate float64 `yaml:"learning_rate"`
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file or overrides exist.
// The sizes follow the usual pretrained-embeddings setup for this corpus.
func Default() Config {
	return Config{
		Data: DataConfig{
			CorpusDir:      "data/20_newsgroup",
			EmbeddingsPath: "data/glove.6B.100d.txt",
			MaxWords:       20000,
			MaxLen:         1000,
			TestFraction:   0.2,
			ValFraction:    0.2,
			Seed:           42,
		},
		Model: ModelConfig{
			Filters: 128,
			Kernel:  5,
			Dense:   128,
			Hidden:  128,
		},
		Training: TrainingConfig{
			Epochs:       10,
			BatchSize:    128,
			LearningRate: 1e-3,
		},
		LogLevel: "info",
	}
}

func applyEnv(cfg *Config) {
	cfg.Data.CorpusDir = getenv("TEXTCAT_CORPUS_DIR", cfg.Data.CorpusDir)
	cfg.Data.EmbeddingsPath = getenv("TEXTCAT_EMBEDDINGS", cfg.Data.EmbeddingsPath)
	cfg.Data.MaxWords = getenvInt("TEXTCAT_MAX_WORDS", cfg.Data.MaxWords)
	cfg.Data.MaxLen = getenvInt("TEXTCAT_MAX_LEN", cfg.Data.MaxLen)
	cfg.Data.TestFraction = getenvFloat("TEXTCAT_TEST_FRACTION", cfg.Data.TestFraction)
	cfg.Data.ValFraction = getenvFloat("TEXTCAT_VAL_FRACTION", cfg.Data.ValFraction)
	cfg.Data.Seed = int64(getenvInt("TEXTCAT_SEED", int(cfg.Data.Seed)))
	cfg.Model.Filters = getenvInt("TEXTCAT_FILTERS", cfg.Model.Filters)
	cfg.Model.Kernel = getenvInt("TEXTCAT_KERNEL", cfg.Model.Kernel)
	cfg.Model.Dense = getenvInt("TEXTCAT_DENSE", cfg.Model.Dense)
	cfg.Model.Hidden = getenvInt("TEXTCAT_HIDDEN", cfg.Model.Hidden)
	cfg.Training.Epochs = getenvInt("TEXTCAT_EPOCHS", cfg.Training.Epochs)
	cfg.Training.BatchSize = getenvInt("TEXTCAT_BATCH_SIZE", cfg.Training.BatchSize)
	cfg.Training.LearningRate = getenvFloat("TEXTCAT_LEARNING_RATE", cfg.Training.LearningRate)
	cfg.LogLevel = getenv("TEXTCAT_LOG_LEVEL", cfg.LogLevel)
	cfg.LogJSON = getenvBool("TEXTCAT_LOG_JSON", cfg.LogJSON)
}

func (c Config) validate() error {
	if c.Data.MaxWords < 2 {
		return fmt.Errorf("config: max_words must be at least 2, got %d", c.Data.MaxWords)
	}
	if c.Data.MaxLen < c.Model.Kernel {
		return fmt.Errorf("config: max_len %d is shorter than the convolution kernel %d",
			c.Data.MaxLen, c.Model.Kernel)
	}
	if c.Data.TestFraction < 0 || c.Data.ValFraction < 0 ||
		c.Data.TestFraction+c.Data.ValFraction >= 1 {
		return fmt.Errorf("config: test/val fractions %g+%g leave no training data",
			c.Data.TestFraction, c.Data.ValFraction)
	}
	if c.Training.LearningRate <= 0 {
		return fmt.Errorf("config: learning_rate must be positive, got %g", c.Training.LearningRate)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
