package corpus

import (
	"fmt"
	"regexp"
	"strings"
)

// Tokenizer splits one line of corpus text into tokens.
type Tokenizer interface {
	Tokenize(line string, emit func(token string))
}

// TokenizerFunc adapts a function to the Tokenizer interface.
type TokenizerFunc func(line string, emit func(token string))

// Tokenize calls f.
func (f TokenizerFunc) Tokenize(line string, emit func(token string)) {
	f(line, emit)
}

// wordPunct matches a run of letters, digits and underscores, or a run of
// anything that is neither a word character nor white space.
var wordPunct = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]+`)

// WordPunct separates word runs from punctuation runs.
var WordPunct Tokenizer = TokenizerFunc(func(line string, emit func(string)) {
	for _, tok := range wordPunct.FindAllString(line, -1) {
		emit(tok)
	}
})

// Whitespace splits on Unicode white space.
var Whitespace Tokenizer = TokenizerFunc(func(line string, emit func(string)) {
	for _, tok := range strings.Fields(line) {
		emit(tok)
	}
})

// TokenizerByName returns a built-in tokenizer: "wordpunct" or "whitespace".
func TokenizerByName(name string) (Tokenizer, error) {
	switch strings.ToLower(name) {
	case "", "wordpunct":
		return WordPunct, nil
	case "whitespace":
		return Whitespace, nil
	default:
		return nil, fmt.Errorf("corpus: unknown tokenizer %q", name)
	}
}
