package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TEXTCAT_CORPUS_DIR", "TEXTCAT_EMBEDDINGS", "TEXTCAT_MAX_WORDS",
		"TEXTCAT_MAX_LEN", "TEXTCAT_TEST_FRACTION", "TEXTCAT_VAL_FRACTION",
		"TEXTCAT_SEED", "TEXTCAT_FILTERS", "TEXTCAT_KERNEL", "TEXTCAT_DENSE",
		"TEXTCAT_HIDDEN", "TEXTCAT_EPOCHS", "TEXTCAT_BATCH_SIZE",
		"TEXTCAT_LEARNING_RATE", "TEXTCAT_LOG_LEVEL", "TEXTCAT_LOG_JSON",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}
	if cfg.Data.MaxWords != 20000 {
		t.Errorf("expected default max_words 20000, got %d", cfg.Data.MaxWords)
	}
	if cfg.Data.MaxLen != 1000 {
		t.Errorf("expected default max_len 1000, got %d", cfg.Data.MaxLen)
	}
	if cfg.Model.Kernel != 5 || cfg.Model.Filters != 128 {
		t.Errorf("unexpected default model config: %+v", cfg.Model)
	}
	if cfg.Training.Epochs != 10 {
		t.Errorf("expected default epochs 10, got %d", cfg.Training.Epochs)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data:
  corpus_dir: /srv/news
  max_words: 5000
  max_len: 200
  test_fraction: 0.1
  val_fraction: 0.1
  seed: 7
training:
  epochs: 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Data.CorpusDir != "/srv/news" {
		t.Errorf("corpus_dir = %q", cfg.Data.CorpusDir)
	}
	if cfg.Data.MaxWords != 5000 || cfg.Data.MaxLen != 200 {
		t.Errorf("unexpected data config: %+v", cfg.Data)
	}
	if cfg.Data.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Data.Seed)
	}
	if cfg.Training.Epochs != 3 {
		t.Errorf("epochs = %d, want 3", cfg.Training.Epochs)
	}
	// Unset fields keep defaults.
	if cfg.Model.Filters != 128 {
		t.Errorf("expected default filters 128, got %d", cfg.Model.Filters)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEXTCAT_MAX_WORDS", "123")
	t.Setenv("TEXTCAT_CORPUS_DIR", "/tmp/corpus")
	t.Setenv("TEXTCAT_EPOCHS", "2")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Data.MaxWords != 123 {
		t.Errorf("env override ignored: max_words = %d", cfg.Data.MaxWords)
	}
	if cfg.Data.CorpusDir != "/tmp/corpus" {
		t.Errorf("env override ignored: corpus_dir = %q", cfg.Data.CorpusDir)
	}
	if cfg.Training.Epochs != 2 {
		t.Errorf("env override ignored: epochs = %d", cfg.Training.Epochs)
	}
}

func TestLoadEnvOverridesFullSurface(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEXTCAT_TEST_FRACTION", "0.1")
	t.Setenv("TEXTCAT_VAL_FRACTION", "0.15")
	t.Setenv("TEXTCAT_LEARNING_RATE", "0.01")
	t.Setenv("TEXTCAT_FILTERS", "64")
	t.Setenv("TEXTCAT_KERNEL", "3")
	t.Setenv("TEXTCAT_DENSE", "32")
	t.Setenv("TEXTCAT_HIDDEN", "16")
	t.Setenv("TEXTCAT_LOG_JSON", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Data.TestFraction != 0.1 || cfg.Data.ValFraction != 0.15 {
		t.Errorf("fraction overrides ignored: %+v", cfg.Data)
	}
	if cfg.Training.LearningRate != 0.01 {
		t.Errorf("learning rate override ignored: %g", cfg.Training.LearningRate)
	}
	if cfg.Model.Filters != 64 || cfg.Model.Kernel != 3 || cfg.Model.Dense != 32 || cfg.Model.Hidden != 16 {
		t.Errorf("model size overrides ignored: %+v", cfg.Model)
	}
	if !cfg.LogJSON {
		t.Error("log_json override ignored")
	}
}

func TestLoadEnvIgnoresMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEXTCAT_LEARNING_RATE", "fast")
	t.Setenv("TEXTCAT_LOG_JSON", "yep")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Training.LearningRate != 1e-3 {
		t.Errorf("malformed learning rate should keep default, got %g", cfg.Training.LearningRate)
	}
	if cfg.LogJSON {
		t.Error("malformed log_json should keep default false")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"kernel longer than sequence", "data:\n  max_len: 3\n", "kernel"},
		{"fractions too large", "data:\n  test_fraction: 0.6\n  val_fraction: 0.5\n", "fractions"},
		{"bad yaml", "data: [", "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
