// Package query turns one input line into the tokens to look up.
//
// A line is split on the single space character only. Consecutive spaces
// yield empty tokens, which are kept and looked up like any other token.
// Each token keeps its surface form for the response key; the lookup key
// drops one trailing period so sentence-final words still resolve.
package query

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrNoInput is returned when the input ends before any line was read.
var ErrNoInput = errors.New("query: no input line")

// Token is one query token.
type Token struct {
	// Raw is the token exactly as it appeared in the line. It keys the response.
	Raw string
	// Key is the normalized form used for the model lookup.
	Key string
}

// Parse splits line on ' ' and normalizes every token.
// An empty line yields a single empty token.
func Parse(line string) []Token {
	fields := strings.Split(line, " ")
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Raw: f, Key: Normalize(f)}
	}
	return tokens
}

// Normalize returns the lookup key for token: a single trailing '.' is
// removed when the token is longer than one byte. "." stays ".".
func Normalize(token string) string {
	if len(token) > 1 && token[len(token)-1] == '.' {
		return token[:len(token)-1]
	}
	return token
}

// LineReader reads newline-terminated lines of any length.
type LineReader struct {
	br *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &LineReader{br: br}
	}
	return &LineReader{br: bufio.NewReader(r)}
}

// Next returns the next line without its terminator ("\n" or "\r\n").
// A last line without terminator is returned as is. At end of input it
// returns io.EOF.
func (lr *LineReader) Next() (string, error) {
	line, err := lr.br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// ReadLine reads exactly one line from r. End of input before any byte is
// ErrNoInput.
func ReadLine(r io.Reader) (string, error) {
	line, err := NewLineReader(r).Next()
	if errors.Is(err, io.EOF) {
		return "", ErrNoInput
	}
	return line, err
}
