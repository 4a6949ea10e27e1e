// Package corpus counts token occurrences in a reference corpus.
//
// A corpus is a set of named text files. Each file is tokenized line by line
// and the per-file counts are merged into one model.FrequencyModel. Files are
// counted concurrently; the merged result does not depend on scheduling.
//
// Two tokenizers are provided. WordPunct splits runs of word characters from
// runs of punctuation ("Mr." → "Mr", "."), which is how the English reference
// corpus is conventionally tokenized. Whitespace splits on white space only,
// for corpora that are already segmented (e.g. Japanese text run through a
// morphological analyzer).
package corpus
