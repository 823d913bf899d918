package model

// Document is the intermediate type produced by the corpus loader and
// consumed by the tokenizer: the body text of one posting and the id of the
// newsgroup it was filed under.
type Document struct {
	Text  string
	Label int
}

// Sample is one encoded example — a fixed-length token id sequence plus its
// label id. Produced by the vectorizer, consumed by training and evaluation.
type Sample struct {
	IDs   []int
	Label int
}
