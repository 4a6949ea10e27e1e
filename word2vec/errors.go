package word2vec

import (
	"errors"
	"fmt"
)

// ErrMalformed is the root of every format violation.
var ErrMalformed = errors.New("word2vec: malformed resource")

// ParseError locates a format violation.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	// Entry is the zero-based entry index, or -1 for the header.
	Entry int
	// Offset is the byte offset at which decoding failed.
	Offset int64
	Msg    string
	cause  error
}

func (e *ParseError) Error() string {
	where := "header"
	if e.Entry >= 0 {
		where = fmt.Sprintf("entry %d", e.Entry)
	}
	if e.cause != nil {
		return fmt.Sprintf("word2vec: %s at byte %d: %s: %v", where, e.Offset, e.Msg, e.cause)
	}
	return fmt.Sprintf("word2vec: %s at byte %d: %s", where, e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.cause}
}
