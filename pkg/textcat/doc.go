// Package textcat trains and evaluates small text classifiers over a
// newsgroup-style corpus using pretrained word embeddings.
//
// Quick start:
//
//	exp, err := textcat.New(
//	    textcat.WithCorpusDir("data/20_newsgroup"),
//	    textcat.WithEmbeddings("data/glove.6B.100d.txt"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := exp.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range results.Models {
//	    fmt.Printf("%s: %.1f%% test accuracy\n", m.Name, m.Test.Accuracy)
//	}
//
// An Experiment runs on a single goroutine from start to finish; create a
// separate Experiment per concurrent run.
package textcat
