// Package dataset partitions encoded examples into train/validation/test
// sets and cuts them into mini-batches.
package dataset

import (
	"fmt"
	"math/rand"

	"github.com/crimson-sun/textcat/internal/model"
)

// Split holds the three disjoint partitions of an encoded corpus.
type Split struct {
	Train []model.Sample
	Val   []model.Sample
	Test  []model.Sample
}

// New partitions samples. Test examples are drawn by shuffling indices with
// the given seed and taking the first testCount; of the remainder (kept in
// shuffled order) the contiguous tail of valCount examples forms the
// validation set and the rest train. Deterministic for a fixed seed and
// input order; no sample appears in more than one partition.
func New(samples []model.Sample, testCount, valCount int, seed int64) (Split, error) {
	n := len(samples)
	if testCount < 0 || valCount < 0 || testCount+valCount > n {
		return Split{}, fmt.Errorf("dataset: cannot split %d samples into test=%d val=%d",
			n, testCount, valCount)
	}

	rng := rand.New(rand.NewSource(seed))
	shuffled := make([]model.Sample, n)
	for i, p := range rng.Perm(n) {
		shuffled[i] = samples[p]
	}

	test := shuffled[:testCount]
	rest := shuffled[testCount:]
	val := rest[len(rest)-valCount:]
	train := rest[:len(rest)-valCount]

	return Split{Train: train, Val: val, Test: test}, nil
}

// Batches cuts samples into contiguous mini-batches. The final batch may be
// smaller than batchSize.
func Batches(samples []model.Sample, batchSize int) [][]model.Sample {
	if batchSize <= 0 {
		batchSize = len(samples)
	}
	var out [][]model.Sample
	for i := 0; i < len(samples); i += batchSize {
		end := i + batchSize
		if end > len(samples) {
			end = len(samples)
		}
		out = append(out, samples[i:end])
	}
	return out
}

// Shuffle permutes samples in place, for per-epoch reshuffling of the
// training set.
func Shuffle(samples []model.Sample, rng *rand.Rand) {
	rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
}
