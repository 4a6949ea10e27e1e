package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_OpenAndList(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "gutenberg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "gutenberg", "austen-emma.txt"), []byte("Emma Woodhouse, handsome"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "gutenberg", "blake-poems.txt"), []byte("Piping down the valleys"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "vectors.bin"), []byte("1 2\n"), 0o600))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	names, err := store.List(ctx, "gutenberg/")
	require.NoError(t, err)
	require.Equal(t, []string{"gutenberg/austen-emma.txt", "gutenberg/blake-poems.txt"}, names)

	blob, err := store.Open(ctx, "gutenberg/austen-emma.txt")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(24), blob.Size())

	buf := make([]byte, 4)
	n, err := blob.ReadAt(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "Emma", string(buf))

	all, err := io.ReadAll(NewReader(blob))
	require.NoError(t, err)
	require.Equal(t, "Emma Woodhouse, handsome", string(all))

	m, ok := blob.(Mappable)
	require.True(t, ok)
	data, err := m.Bytes()
	require.NoError(t, err)
	require.Len(t, data, 24)
}

func TestLocalStore_NotFound(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open(context.Background(), "missing.bin")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	store.Put("model/a.bin", []byte("alpha"))
	store.Put("model/b.bin", []byte("beta"))
	store.Put("corpus/c.txt", []byte("gamma"))

	ctx := context.Background()

	names, err := store.List(ctx, "model/")
	require.NoError(t, err)
	require.Equal(t, []string{"model/a.bin", "model/b.bin"}, names)

	blob, err := store.Open(ctx, "model/b.bin")
	require.NoError(t, err)
	all, err := io.ReadAll(NewReader(blob))
	require.NoError(t, err)
	require.Equal(t, "beta", string(all))
	require.NoError(t, blob.Close())

	_, err = store.Open(ctx, "model/c.bin")
	require.ErrorIs(t, err, ErrNotFound)

	f, err := os.Create(filepath.Join(t.TempDir(), "download"))
	require.NoError(t, err)
	defer f.Close()

	n, err := store.Download(ctx, "corpus/c.txt", f)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
}
