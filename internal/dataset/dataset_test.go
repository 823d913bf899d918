package dataset

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/crimson-sun/textcat/internal/model"
)

// numbered builds n samples whose first id encodes their original position,
// so partition membership can be tracked through shuffling.
func numbered(n int) []model.Sample {
	out := make([]model.Sample, n)
	for i := range out {
		out[i] = model.Sample{IDs: []int{i}, Label: i % 3}
	}
	return out
}

func TestNewPartitionsAreDisjointAndExhaustive(t *testing.T) {
	samples := numbered(100)
	split, err := New(samples, 20, 16, 42)
	if err != nil {
		t.Fatalf("failed to split: %v", err)
	}
	if len(split.Test) != 20 || len(split.Val) != 16 || len(split.Train) != 64 {
		t.Fatalf("unexpected partition sizes: train=%d val=%d test=%d",
			len(split.Train), len(split.Val), len(split.Test))
	}

	seen := make(map[int]int)
	for _, part := range [][]model.Sample{split.Train, split.Val, split.Test} {
		for _, s := range part {
			seen[s.IDs[0]]++
		}
	}
	if len(seen) != 100 {
		t.Errorf("expected every sample in exactly one partition, got %d distinct", len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("sample %d appears %d times", id, count)
		}
	}
}

func TestNewDeterministic(t *testing.T) {
	a, err := New(numbered(50), 10, 8, 7)
	if err != nil {
		t.Fatalf("failed to split: %v", err)
	}
	b, err := New(numbered(50), 10, 8, 7)
	if err != nil {
		t.Fatalf("failed to split: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and input produced different splits")
	}

	c, err := New(numbered(50), 10, 8, 8)
	if err != nil {
		t.Fatalf("failed to split: %v", err)
	}
	if reflect.DeepEqual(a.Test, c.Test) {
		t.Error("different seeds produced identical test sets")
	}
}

func TestNewRejectsOversizedSplit(t *testing.T) {
	if _, err := New(numbered(10), 8, 5, 1); err == nil {
		t.Error("expected error when test+val exceeds total")
	}
	if _, err := New(numbered(10), -1, 0, 1); err == nil {
		t.Error("expected error for negative count")
	}
}

func TestBatches(t *testing.T) {
	batches := Batches(numbered(10), 4)
	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}
	if len(batches[0]) != 4 || len(batches[1]) != 4 || len(batches[2]) != 2 {
		t.Errorf("unexpected batch sizes: %d %d %d",
			len(batches[0]), len(batches[1]), len(batches[2]))
	}
}

func TestBatchesEmpty(t *testing.T) {
	if got := Batches(nil, 4); got != nil {
		t.Errorf("expected no batches for empty input, got %d", len(got))
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := numbered(20)
	b := numbered(20)
	Shuffle(a, rand.New(rand.NewSource(3)))
	Shuffle(b, rand.New(rand.NewSource(3)))
	if !reflect.DeepEqual(a, b) {
		t.Error("same rng seed produced different shuffles")
	}
}
