package sqlitevec

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/hupe1980/lexfeat/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEmbedding_RoundTrip(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25, 3.75}

	decoded, err := DecodeEmbedding(EncodeEmbedding(orig))
	require.NoError(t, err)
	assert.Equal(t, orig, decoded)
}

func TestEncodeDecodeEmbedding_Empty(t *testing.T) {
	assert.Empty(t, EncodeEmbedding(nil))

	vec, err := DecodeEmbedding(nil)
	require.NoError(t, err)
	assert.Empty(t, vec)

	_, err = DecodeEmbedding([]byte{1, 2, 3})
	require.Error(t, err)
}

func seed(t *testing.T, db *sql.DB, entries []Entry) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, CreateTable(ctx, db, ""))
	require.NoError(t, Insert(ctx, db, "", entries))
}

func memDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	// Each pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	db := memDB(t)
	seed(t, db, []Entry{
		{"cat", []float32{0.1, 0.2}},
		{"dog", []float32{0.3, 0.4}},
		{"blank", nil},
		{"fish", []float32{0.5, 0.6}},
	})

	m, err := Load(context.Background(), db, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Dim())
	assert.Equal(t, 3, m.Len())

	vec, ok := m.Vector("dog")
	require.True(t, ok)
	assert.Equal(t, []float32{0.3, 0.4}, vec)

	_, ok = m.Vector("blank")
	assert.False(t, ok)
}

func TestLoad_Limit(t *testing.T) {
	db := memDB(t)
	seed(t, db, []Entry{
		{"cat", []float32{1}},
		{"dog", []float32{2}},
		{"fish", []float32{3}},
	})

	m, err := Load(context.Background(), db, Options{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	_, ok := m.Vector("fish")
	assert.False(t, ok)
}

func TestLoad_DimensionMismatch(t *testing.T) {
	db := memDB(t)
	seed(t, db, []Entry{
		{"cat", []float32{1, 2}},
		{"dog", []float32{3}},
	})

	_, err := Load(context.Background(), db, Options{})
	var mismatch *model.ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "dog", mismatch.Token)
}

func TestLoad_Empty(t *testing.T) {
	db := memDB(t)
	seed(t, db, nil)

	_, err := Load(context.Background(), db, Options{})
	require.ErrorIs(t, err, model.ErrEmptyModel)
}

func TestLoad_InvalidTable(t *testing.T) {
	db := memDB(t)
	_, err := Load(context.Background(), db, Options{Table: "vectors; DROP TABLE x"})
	require.ErrorIs(t, err, ErrInvalidTable)

	_, err = Load(context.Background(), db, Options{Table: "missing"})
	require.Error(t, err)
}

func TestOpenReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")
	db, err := Open(path)
	require.NoError(t, err)
	seed(t, db, []Entry{{"cat", []float32{1, 2, 3}}})
	require.NoError(t, db.Close())

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	m, err := Load(context.Background(), ro, Options{Table: DefaultTable})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dim())

	_, err = ro.Exec("DELETE FROM vectors")
	require.Error(t, err)
}
