package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/crimson-sun/textcat/internal/config"
	"github.com/crimson-sun/textcat/internal/logging"
	"github.com/crimson-sun/textcat/internal/report"
	"github.com/crimson-sun/textcat/pkg/textcat"
)

func main() {
	// .env is optional; env vars feed the config layer.
	_ = godotenv.Load()

	cfgPath := flag.String("config", "config.yaml", "path to the config YAML")
	dataDir := flag.String("data", "", "corpus root (overrides config)")
	embeddings := flag.String("embeddings", "", "pretrained embedding file (overrides config)")
	models := flag.String("model", "both", "architecture to run: cnn, lstm or both")
	epochs := flag.Int("epochs", 0, "training epochs (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textcat: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Data.CorpusDir = *dataDir
	}
	if *embeddings != "" {
		cfg.Data.EmbeddingsPath = *embeddings
	}
	if *epochs > 0 {
		cfg.Training.Epochs = *epochs
	}

	logging.Init(cfg.LogJSON, logging.ParseLevel(cfg.LogLevel))

	selected, err := parseModels(*models)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textcat: %v\n", err)
		os.Exit(1)
	}

	runID := uuid.NewString()
	slog.Info("starting run",
		"run_id", runID,
		"corpus", cfg.Data.CorpusDir,
		"embeddings", cfg.Data.EmbeddingsPath,
		"models", selected,
	)

	exp, err := textcat.New(
		textcat.WithCorpusDir(cfg.Data.CorpusDir),
		textcat.WithEmbeddings(cfg.Data.EmbeddingsPath),
		textcat.WithMaxWords(cfg.Data.MaxWords),
		textcat.WithMaxLen(cfg.Data.MaxLen),
		textcat.WithSplit(cfg.Data.TestFraction, cfg.Data.ValFraction),
		textcat.WithSeed(cfg.Data.Seed),
		textcat.WithEpochs(cfg.Training.Epochs),
		textcat.WithBatchSize(cfg.Training.BatchSize),
		textcat.WithLearningRate(cfg.Training.LearningRate),
		textcat.WithCNNShape(cfg.Model.Filters, cfg.Model.Kernel, cfg.Model.Dense),
		textcat.WithLSTMHidden(cfg.Model.Hidden),
		textcat.WithModels(selected...),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textcat: %v\n", err)
		os.Exit(1)
	}

	results, err := exp.Run()
	if err != nil {
		slog.Error("run failed", "run_id", runID, "error", err)
		os.Exit(1)
	}

	for _, m := range results.Models {
		fmt.Printf("\n=== %s: test loss %.4f, accuracy %.1f%% ===\n\n",
			m.Name, m.Test.MeanLoss, m.Test.Accuracy)
		fmt.Println(report.PerClassTable(results.Classes, m.Confusion))
		fmt.Println(report.ConfusionTable(results.Classes, m.Confusion))
	}
	slog.Info("run complete", "run_id", runID)
}

// parseModels maps the --model flag to the architecture list.
func parseModels(s string) ([]string, error) {
	switch strings.ToLower(s) {
	case "both", "":
		return []string{"cnn", "lstm"}, nil
	case "cnn":
		return []string{"cnn"}, nil
	case "lstm":
		return []string{"lstm"}, nil
	default:
		return nil, fmt.Errorf("unknown model %q (want cnn, lstm or both)", s)
	}
}
