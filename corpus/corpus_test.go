package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/hupe1980/lexfeat/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(tok Tokenizer, line string) []string {
	var out []string
	tok.Tokenize(line, func(s string) { out = append(out, s) })
	return out
}

func TestWordPunct(t *testing.T) {
	assert.Equal(t,
		[]string{"[", "Emma", "by", "Jane", "Austen", "1816", "]"},
		tokens(WordPunct, "[Emma by Jane Austen 1816]"))
	assert.Equal(t,
		[]string{"Mr", ".", "Knightley", "'", "s", "--", "said", "she", ";"},
		tokens(WordPunct, "Mr. Knightley's--said she;"))
	assert.Equal(t,
		[]string{"café", "naïve", "_x_", "?!"},
		tokens(WordPunct, "café naïve _x_ ?!"))
	assert.Empty(t, tokens(WordPunct, "   \t\n"))
}

func TestWhitespace(t *testing.T) {
	assert.Equal(t,
		[]string{"今日", "は", "良い", "天気", "。"},
		tokens(Whitespace, "今日 は 良い\t天気 。\n"))
}

func TestTokenizerByName(t *testing.T) {
	tok, err := TokenizerByName("whitespace")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.b"}, tokens(tok, "a.b"))

	tok, err = TokenizerByName("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", ".", "b"}, tokens(tok, "a.b"))

	_, err = TokenizerByName("mecab")
	require.Error(t, err)
}

func TestCountReader(t *testing.T) {
	counts, err := CountReader(context.Background(), strings.NewReader("a a b\na c a\n\na b a a"), Options{})
	require.NoError(t, err)
	assert.Equal(t, model.Counter{"a": 7, "b": 2, "c": 1}, counts)
}

func TestCountReader_NFC(t *testing.T) {
	// "é" as e + combining acute accent.
	decomposed := "café café"

	counts, err := CountReader(context.Background(), strings.NewReader(decomposed), Options{Tokenizer: Whitespace})
	require.NoError(t, err)
	assert.Len(t, counts, 2)

	counts, err = CountReader(context.Background(), strings.NewReader(decomposed), Options{Tokenizer: Whitespace, NFC: true})
	require.NoError(t, err)
	assert.Equal(t, model.Counter{"café": 2}, counts)
}

func memOpener(files map[string]string) Opener {
	return func(_ context.Context, name string) (io.ReadCloser, error) {
		text, ok := files[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, errors.New("not found"))
		}
		return io.NopCloser(strings.NewReader(text)), nil
	}
}

func TestCount_MergesFiles(t *testing.T) {
	files := map[string]string{
		"one.txt":   "a a b\n",
		"two.txt":   "a c a\n",
		"three.txt": "a b a a",
	}

	for _, workers := range []int{0, 1, 3, 8} {
		m, err := Count(context.Background(), []string{"one.txt", "two.txt", "three.txt"}, memOpener(files), Options{Workers: workers})
		require.NoError(t, err)

		assert.Equal(t, uint64(3), m.VocabularySize())
		assert.Equal(t, uint64(10), m.TotalTokenCount())
		assert.Equal(t, uint64(7), m.Count("a"))
		assert.Equal(t, uint64(2), m.Count("b"))
		assert.Equal(t, uint64(1), m.Count("c"))
		assert.Equal(t, uint64(0), m.Count("z"))
	}
}

func TestCount_FailsOnMissingFile(t *testing.T) {
	_, err := Count(context.Background(), []string{"one.txt", "gone.txt"}, memOpener(map[string]string{"one.txt": "a"}), Options{Workers: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone.txt")
}

func TestCount_Empty(t *testing.T) {
	_, err := Count(context.Background(), nil, memOpener(nil), Options{})
	require.ErrorIs(t, err, model.ErrEmptyModel)

	_, err = Count(context.Background(), []string{"blank.txt"}, memOpener(map[string]string{"blank.txt": " \n"}), Options{})
	require.ErrorIs(t, err, model.ErrEmptyModel)
}

func TestCount_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Count(ctx, []string{"one.txt"}, memOpener(map[string]string{"one.txt": "a"}), Options{})
	require.ErrorIs(t, err, context.Canceled)
}
