package word2vec

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	token string
	vec   []float32
}

var fixture = []entry{
	{"cat", []float32{0.1, 0.2, 0.3}},
	{"dog", []float32{-0.4, 0.5, 6e-7}},
	{"New_York", []float32{1, 2, 3}},
	{"東京", []float32{0, -1, 0.25}},
}

func encode(t *testing.T, binaryFormat bool, entries []entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, Header{VocabSize: len(entries), Dim: 3}, binaryFormat)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, w.Write(e.token, e.vec))
	}
	require.NoError(t, w.Flush())
	return buf.Bytes()
}

func readAll(t *testing.T, r *Reader) []entry {
	t.Helper()
	var out []entry
	for {
		token, vec, err := r.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, entry{token, vec})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, binaryFormat := range []bool{true, false} {
		data := encode(t, binaryFormat, fixture)

		r, err := NewReader(bytes.NewReader(data), Options{Binary: binaryFormat})
		require.NoError(t, err)
		assert.Equal(t, Header{VocabSize: 4, Dim: 3}, r.Header())

		got := readAll(t, r)
		assert.Equal(t, fixture, got, "binary=%v", binaryFormat)
	}
}

func TestReader_Limit(t *testing.T) {
	data := encode(t, true, fixture)

	r, err := NewReader(bytes.NewReader(data), Options{Binary: true, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Remaining())

	got := readAll(t, r)
	require.Len(t, got, 2)
	assert.Equal(t, "cat", got[0].token)
	assert.Equal(t, "dog", got[1].token)
	assert.Zero(t, r.Remaining())
}

func TestReader_LimitAboveVocab(t *testing.T) {
	data := encode(t, false, fixture)

	r, err := NewReader(bytes.NewReader(data), Options{Limit: 100000})
	require.NoError(t, err)
	assert.Len(t, readAll(t, r), 4)
}

func TestReader_BinaryWithoutNewlines(t *testing.T) {
	// Some writers omit the '\n' after each vector.
	var buf bytes.Buffer
	buf.WriteString("2 1\n")
	buf.WriteString("a ")
	buf.Write([]byte{0x00, 0x00, 0x80, 0x3f}) // 1.0
	buf.WriteString("b ")
	buf.Write([]byte{0x00, 0x00, 0x00, 0x40}) // 2.0

	r, err := NewReader(&buf, Options{Binary: true})
	require.NoError(t, err)
	got := readAll(t, r)
	assert.Equal(t, []entry{{"a", []float32{1}}, {"b", []float32{2}}}, got)
}

func TestReader_Truncated(t *testing.T) {
	data := encode(t, true, fixture)
	data = data[:len(data)-6]

	r, err := NewReader(bytes.NewReader(data), Options{Binary: true})
	require.NoError(t, err)

	var perr *ParseError
	for {
		_, _, err = r.Next()
		if err != nil {
			break
		}
	}
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Entry)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReader_BadHeader(t *testing.T) {
	for _, header := range []string{"", "3\n", "x 300\n", "3 0\n", "3 -1\n", "-1 3\n"} {
		_, err := NewReader(bytes.NewReader([]byte(header)), Options{Binary: true})
		require.Error(t, err, "header %q", header)
		assert.True(t, errors.Is(err, ErrMalformed), "header %q", header)
	}
}

func TestReader_TextWrongArity(t *testing.T) {
	data := []byte("1 3\ncat 0.1 0.2\n")
	r, err := NewReader(bytes.NewReader(data), Options{})
	require.NoError(t, err)

	_, _, err = r.Next()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 0, perr.Entry)
}

func TestReader_TextBadNumber(t *testing.T) {
	data := []byte("1 2\ncat 0.1 abc\n")
	r, err := NewReader(bytes.NewReader(data), Options{})
	require.NoError(t, err)

	_, _, err = r.Next()
	require.ErrorIs(t, err, ErrMalformed)
}

func TestWriter_RejectsBadEntries(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, Header{VocabSize: 1, Dim: 2}, true)
	require.NoError(t, err)

	require.Error(t, w.Write("cat", []float32{1}))
	require.Error(t, w.Write("two words", []float32{1, 2}))
	require.Error(t, w.Write("", []float32{1, 2}))

	_, err = NewWriter(&buf, Header{Dim: 0}, true)
	require.Error(t, err)
}

func TestReader_VectorsDoNotAlias(t *testing.T) {
	data := encode(t, true, fixture)
	r, err := NewReader(bytes.NewReader(data), Options{Binary: true})
	require.NoError(t, err)

	_, first, err := r.Next()
	require.NoError(t, err)
	_, second, err := r.Next()
	require.NoError(t, err)

	first = append(first, 42)
	assert.Equal(t, []float32{-0.4, 0.5, 6e-7}, second)
	assert.Len(t, first, 4)
}
