// Package word2vec reads and writes the word2vec vector formats.
//
// Both formats start with an ASCII header line "<vocab_size> <dim>\n".
//
// Binary body, per entry: the token bytes, a single space, then dim
// little-endian IEEE 754 float32 values. Writers usually append '\n' after
// each vector; newlines between entries are skipped on read.
//
// Text body, per line: the token followed by dim space-separated decimals.
//
//	r, err := word2vec.NewReader(f, word2vec.Options{Binary: true, Limit: 50000})
//	for {
//	    token, vec, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
package word2vec
