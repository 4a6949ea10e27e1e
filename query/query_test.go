package query

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Example.", "Example"},
		{".", "."},
		{"..", "."},
		{"U.S.", "U.S"},
		{"word", "word"},
		{"end!", "end!"},
		{"", ""},
		{"猫.", "猫"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestParse(t *testing.T) {
	tokens := Parse("I think this is not difficult.")
	require.Len(t, tokens, 6)
	assert.Equal(t, Token{Raw: "I", Key: "I"}, tokens[0])
	assert.Equal(t, Token{Raw: "difficult.", Key: "difficult"}, tokens[5])
}

func TestParse_KeepsEmptyTokens(t *testing.T) {
	tokens := Parse("a  b ")
	require.Equal(t, []Token{
		{Raw: "a", Key: "a"},
		{Raw: "", Key: ""},
		{Raw: "b", Key: "b"},
		{Raw: "", Key: ""},
	}, tokens)
}

func TestParse_EmptyLine(t *testing.T) {
	require.Equal(t, []Token{{}}, Parse(""))
}

func TestParse_DoesNotDeduplicate(t *testing.T) {
	tokens := Parse("cat cat.")
	require.Len(t, tokens, 2)
	assert.Equal(t, "cat", tokens[0].Key)
	assert.Equal(t, "cat", tokens[1].Key)
	assert.Equal(t, "cat.", tokens[1].Raw)
}

func TestReadLine(t *testing.T) {
	line, err := ReadLine(strings.NewReader("cat dog fish\nsecond line\n"))
	require.NoError(t, err)
	assert.Equal(t, "cat dog fish", line)

	line, err = ReadLine(strings.NewReader("cat dog\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "cat dog", line)

	line, err = ReadLine(strings.NewReader("no terminator"))
	require.NoError(t, err)
	assert.Equal(t, "no terminator", line)

	line, err = ReadLine(strings.NewReader("\n"))
	require.NoError(t, err)
	assert.Equal(t, "", line)

	_, err = ReadLine(strings.NewReader(""))
	require.ErrorIs(t, err, ErrNoInput)
}

func TestLineReader(t *testing.T) {
	lr := NewLineReader(strings.NewReader("a b\nc\n\nd"))

	var lines []string
	for {
		line, err := lr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"a b", "c", "", "d"}, lines)
}

func TestLineReader_LongLine(t *testing.T) {
	long := strings.Repeat("token ", 100000)
	line, err := ReadLine(strings.NewReader(long + "\n"))
	require.NoError(t, err)
	assert.Equal(t, long, line)
}
