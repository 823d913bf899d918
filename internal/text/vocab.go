package text

import "sort"

// Vocab maps tokens to integer ids assigned by descending corpus frequency.
// Id 0 is reserved for sequence padding; real tokens start at 1. The
// maxWords cap is applied at encoding time: tokens whose id is >= maxWords
// are treated as out-of-vocabulary and dropped.
type Vocab struct {
	index    map[string]int
	maxWords int
}

// BuildVocab counts token frequencies across all document texts and assigns
// ids 1..N in descending-frequency order. Equal-frequency tokens keep their
// first-seen order, so the result is deterministic for a fixed document
// order.
func BuildVocab(texts []string, maxWords int) *Vocab {
	counts := make(map[string]int)
	var order []string
	for _, text := range texts {
		for _, tok := range Tokenize(text) {
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	index := make(map[string]int, len(order))
	for i, tok := range order {
		index[tok] = i + 1
	}
	return &Vocab{index: index, maxWords: maxWords}
}

// Len returns the number of distinct tokens seen, ignoring the cap.
func (v *Vocab) Len() int {
	return len(v.index)
}

// MaxWords returns the vocabulary cap.
func (v *Vocab) MaxWords() int {
	return v.maxWords
}

// Index returns the full token→id mapping. Callers must not modify it.
func (v *Vocab) Index() map[string]int {
	return v.index
}

// Encode converts text to a fixed-length id sequence. Unknown and over-cap
// tokens are silently dropped; sequences longer than maxLen keep their
// trailing tokens, shorter ones are left-padded with 0. Every returned
// sequence has length exactly maxLen and every id is in [0, maxWords).
func (v *Vocab) Encode(text string, maxLen int) []int {
	var ids []int
	for _, tok := range Tokenize(text) {
		id, ok := v.index[tok]
		if !ok || id >= v.maxWords {
			continue
		}
		ids = append(ids, id)
	}
	return PadPre(ids, maxLen)
}

// PadPre fits ids to exactly maxLen: longer inputs are truncated keeping
// the trailing maxLen elements, shorter ones are left-padded with zeros.
func PadPre(ids []int, maxLen int) []int {
	out := make([]int, maxLen)
	if len(ids) > maxLen {
		ids = ids[len(ids)-maxLen:]
	}
	copy(out[maxLen-len(ids):], ids)
	return out
}
