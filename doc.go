// Package lexfeat answers lexical-feature queries for a text segmenter.
//
// An Oracle wraps one immutable lookup engine. Each query is a single line of
// space-separated tokens; the answer is a single-line JSON object keyed by the
// tokens as written, holding either a word vector or a corpus frequency per
// token.
//
// # Vector Mode
//
//	m, _ := loader.LoadVectors(ctx, loader.VectorSource{Store: store, Name: "vectors.bin", Limit: 50000})
//	o := lexfeat.New(lookup.NewVectors(m))
//	o.Run(ctx, os.Stdin, os.Stdout)
//
// Input "cat dog fish" against a model holding cat and dog writes
//
//	{"cat":[0.1,0.2],"dog":[0.3,0.4]}
//
// Tokens without a vector are omitted.
//
// # Frequency Mode
//
//	m, _ := loader.LoadFrequencies(ctx, loader.CorpusSource{Store: store, Files: []string{"austen-emma.txt"}})
//	o := lexfeat.New(lookup.NewFrequencies(m, lookup.DefaultAggregateKeys))
//
// Input "a b z" writes the corpus aggregates first, then one count per token:
//
//	{"vocabulary_size":3,"total_token_count":10,"a":7,"b":2,"z":0}
//
// # Normalization
//
// A token longer than one character that ends in '.' is looked up without
// that period. The response still uses the token as written, so "Example."
// maps to the vector of "Example" under the key "Example.".
//
// # Persistent Worker
//
// Run answers one line and returns. Serve answers every line until the input
// ends, reusing the loaded model, with the same per-line contract.
package lexfeat
