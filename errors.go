package lexfeat

import (
	"errors"
	"fmt"
)

// ErrNilEngine is returned when an Oracle has no lookup engine.
var ErrNilEngine = errors.New("lexfeat: nil lookup engine")

// QueryError reports a query line that could not be answered.
//
// The underlying error can be accessed via errors.Unwrap.
type QueryError struct {
	// Line is the 1-based input line number.
	Line  int
	cause error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("lexfeat: line %d: %v", e.Line, e.cause)
}

func (e *QueryError) Unwrap() error { return e.cause }
