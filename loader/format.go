package loader

import (
	"fmt"
	"strings"
)

// Format identifies a vector resource encoding.
type Format string

// Supported formats.
const (
	FormatWord2VecBinary Format = "word2vec-bin"
	FormatWord2VecText   Format = "word2vec-text"
	FormatWego           Format = "wego"
	FormatSQLite         Format = "sqlite"
)

// ParseFormat validates a format name. The empty name selects word2vec-bin.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatWord2VecBinary, nil
	case FormatWord2VecBinary, FormatWord2VecText, FormatWego, FormatSQLite:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}
