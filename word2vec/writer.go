package word2vec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Writer encodes entries in either word2vec format.
type Writer struct {
	bw     *bufio.Writer
	header Header
	binary bool
	buf    []byte
}

// NewWriter writes the header and returns a Writer for its entries.
func NewWriter(w io.Writer, h Header, binaryFormat bool) (*Writer, error) {
	if h.Dim <= 0 {
		return nil, fmt.Errorf("word2vec: invalid dimension %d", h.Dim)
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", h.VocabSize, h.Dim); err != nil {
		return nil, err
	}
	return &Writer{bw: bw, header: h, binary: binaryFormat, buf: make([]byte, 4*h.Dim)}, nil
}

// Write appends one entry.
func (w *Writer) Write(token string, vec []float32) error {
	if len(vec) != w.header.Dim {
		return fmt.Errorf("word2vec: %q has %d components, header says %d", token, len(vec), w.header.Dim)
	}
	if token == "" || strings.ContainsAny(token, " \n") {
		return fmt.Errorf("word2vec: token %q cannot be encoded", token)
	}

	if _, err := w.bw.WriteString(token); err != nil {
		return err
	}
	if w.binary {
		if err := w.bw.WriteByte(' '); err != nil {
			return err
		}
		for i, f := range vec {
			binary.LittleEndian.PutUint32(w.buf[4*i:], math.Float32bits(f))
		}
		if _, err := w.bw.Write(w.buf); err != nil {
			return err
		}
		return w.bw.WriteByte('\n')
	}

	for _, f := range vec {
		if err := w.bw.WriteByte(' '); err != nil {
			return err
		}
		if _, err := w.bw.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32)); err != nil {
			return err
		}
	}
	return w.bw.WriteByte('\n')
}

// Flush writes any buffered data.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
