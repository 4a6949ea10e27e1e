// Package loader builds immutable models from resource locations.
//
// A location is a local path, s3://bucket/key, minio://bucket/key or
// mem://name. Resources ending in .gz, .zst or .lz4 are decompressed while
// they are read. Loading either returns a complete model or an error; a
// partially decoded model is never returned.
//
// Vector resources come in four formats:
//
//	word2vec-bin   "<vocab> <dim>\n" then token, ' ', dim little-endian float32
//	word2vec-text  "<vocab> <dim>\n" then "token f1 ... fdim" per line
//	wego           "token f1 ... fdim" per line, no header
//	sqlite         a SQLite database holding a vectors table
//
// Frequency models are counted from a set of corpus text files.
package loader
