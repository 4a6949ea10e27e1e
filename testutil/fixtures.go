package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/lexfeat/sqlitevec"
	"github.com/hupe1980/lexfeat/word2vec"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

// Word2Vec encodes tokens and vecs as a word2vec resource.
func Word2Vec(t testing.TB, tokens []string, vecs [][]float32, binary bool) []byte {
	t.Helper()
	require.Equal(t, len(tokens), len(vecs))
	require.NotEmpty(t, vecs)

	var buf bytes.Buffer
	w, err := word2vec.NewWriter(&buf, word2vec.Header{VocabSize: len(tokens), Dim: len(vecs[0])}, binary)
	require.NoError(t, err)
	for i, tok := range tokens {
		require.NoError(t, w.Write(tok, vecs[i]))
	}
	require.NoError(t, w.Flush())
	return buf.Bytes()
}

// SQLiteVectors writes tokens and vecs into a new database at path.
func SQLiteVectors(t testing.TB, path string, tokens []string, vecs [][]float32) {
	t.Helper()
	require.Equal(t, len(tokens), len(vecs))

	db, err := sqlitevec.Open(path)
	require.NoError(t, err)
	defer db.Close()

	entries := make([]sqlitevec.Entry, len(tokens))
	for i, tok := range tokens {
		entries[i] = sqlitevec.Entry{Token: tok, Vector: vecs[i]}
	}
	ctx := context.Background()
	require.NoError(t, sqlitevec.CreateTable(ctx, db, sqlitevec.DefaultTable))
	require.NoError(t, sqlitevec.Insert(ctx, db, sqlitevec.DefaultTable, entries))
}

// WriteFile writes data to dir/name, creating parent directories, and
// returns the full path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// Gzip compresses data.
func Gzip(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// Zstd compresses data.
func Zstd(t testing.TB, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

// LZ4 compresses data as an LZ4 frame.
func LZ4(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
