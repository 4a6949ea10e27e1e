// Package testutil provides fixtures for lexfeat tests.
//
// This package is intended for use in tests and benchmarks only.
// It generates deterministic vocabularies, vectors and Zipf-distributed
// corpora, and encodes them in the resource formats the loader reads.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	vocab := rng.Vocabulary(1000)
//	vecs := rng.UniformRangeVectors(len(vocab), 300)
//	text := rng.ZipfCorpus(vocab, 10000, 12, 1.1)
//
// # Resource Encoding
//
//	data := testutil.Word2Vec(t, vocab, vecs, true)
//	path := testutil.WriteFile(t, dir, "vectors.bin.gz", testutil.Gzip(t, data))
package testutil
