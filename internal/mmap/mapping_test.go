package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapping_ReadAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.bin")
	require.NoError(t, os.WriteFile(path, []byte("2 3\ncat dog"), 0o600))

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, int64(11), m.Size())
	require.NoError(t, m.Advise(AccessSequential))

	buf := make([]byte, 3)
	n, err := m.ReadAt(buf, 4)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "cat", string(buf))

	n, err = m.ReadAt(make([]byte, 8), 8)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 3, n)

	_, err = m.ReadAt(buf, -1)
	require.ErrorIs(t, err, ErrInvalidOffset)
}

func TestMapping_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	m, err := Open(path)
	require.NoError(t, err)
	require.Zero(t, m.Size())
	require.Nil(t, m.Bytes())
	require.NoError(t, m.Close())
}

func TestMapping_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	m, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	require.Nil(t, m.Bytes())

	_, err = m.ReadAt(make([]byte, 1), 0)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
