// Package nn implements the small neural layers behind the two text
// classifiers: dense, 1-D convolution and LSTM, plus softmax cross-entropy
// and an Adam optimizer. Everything is float64 on gonum matrices, computed
// forward/backward one example at a time on a single goroutine.
package nn
