package word2vec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// slabVectors is how many vectors share one backing allocation.
const slabVectors = 4096

// Header is the leading "<vocab_size> <dim>" line.
type Header struct {
	VocabSize int
	Dim       int
}

// Options configures a Reader.
type Options struct {
	// Binary selects the binary body format; false reads the text format.
	Binary bool
	// Limit caps the number of entries read. 0 reads all of them.
	Limit int
}

// Reader decodes entries one at a time.
type Reader struct {
	br     *bufio.Reader
	header Header
	opts   Options
	want   int
	read   int
	offset int64
	buf    []byte
	slab   []float32
}

// NewReader reads and validates the header.
func NewReader(r io.Reader, opts Options) (*Reader, error) {
	rd := &Reader{
		br:   bufio.NewReaderSize(r, 1<<20),
		opts: opts,
	}

	line, err := rd.readLine()
	if err != nil {
		return nil, &ParseError{Entry: -1, Offset: 0, Msg: "reading header", cause: err}
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, &ParseError{Entry: -1, Msg: "header must be \"<vocab_size> <dim>\""}
	}
	vocab, err := strconv.Atoi(fields[0])
	if err != nil || vocab < 0 {
		return nil, &ParseError{Entry: -1, Msg: "invalid vocabulary size " + strconv.Quote(fields[0])}
	}
	dim, err := strconv.Atoi(fields[1])
	if err != nil || dim <= 0 {
		return nil, &ParseError{Entry: -1, Msg: "invalid dimension " + strconv.Quote(fields[1])}
	}

	rd.header = Header{VocabSize: vocab, Dim: dim}
	rd.want = vocab
	if opts.Limit > 0 && opts.Limit < vocab {
		rd.want = opts.Limit
	}
	if opts.Binary {
		rd.buf = make([]byte, 4*dim)
	}
	return rd, nil
}

// Header returns the decoded header.
func (r *Reader) Header() Header {
	return r.header
}

// Remaining returns how many entries are still to be read.
func (r *Reader) Remaining() int {
	return r.want - r.read
}

// Next returns the next token and vector. The vector is owned by the caller.
// After the last wanted entry it returns io.EOF; a body that ends early is a
// ParseError wrapping io.ErrUnexpectedEOF.
func (r *Reader) Next() (string, []float32, error) {
	if r.read >= r.want {
		return "", nil, io.EOF
	}

	var (
		token string
		vec   []float32
		err   error
	)
	if r.opts.Binary {
		token, vec, err = r.nextBinary()
	} else {
		token, vec, err = r.nextText()
	}
	if err != nil {
		return "", nil, err
	}
	r.read++
	return token, vec, nil
}

func (r *Reader) nextBinary() (string, []float32, error) {
	start := r.offset
	var sb strings.Builder
	for {
		c, err := r.br.ReadByte()
		if err != nil {
			return "", nil, r.fail(start, "reading token", unexpected(err))
		}
		r.offset++
		if c == ' ' {
			break
		}
		if c == '\n' {
			continue
		}
		sb.WriteByte(c)
	}

	if _, err := io.ReadFull(r.br, r.buf); err != nil {
		return "", nil, r.fail(start, "reading vector of "+strconv.Quote(sb.String()), unexpected(err))
	}
	r.offset += int64(len(r.buf))

	vec := r.alloc()
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(r.buf[4*i:]))
	}
	return sb.String(), vec, nil
}

func (r *Reader) nextText() (string, []float32, error) {
	start := r.offset
	var (
		line string
		err  error
	)
	for line == "" {
		line, err = r.readLine()
		if err != nil {
			return "", nil, r.fail(start, "reading line", unexpected(err))
		}
	}

	parts := strings.Split(strings.TrimRight(line, " \t"), " ")
	if len(parts) != r.header.Dim+1 {
		return "", nil, r.fail(start, "expected token and "+strconv.Itoa(r.header.Dim)+" values, got "+strconv.Itoa(len(parts)-1), nil)
	}

	vec := r.alloc()
	for i, p := range parts[1:] {
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return "", nil, r.fail(start, "invalid component for "+strconv.Quote(parts[0]), err)
		}
		vec[i] = float32(f)
	}
	return parts[0], vec, nil
}

// alloc hands out dim-sized vectors carved from a shared slab.
func (r *Reader) alloc() []float32 {
	dim := r.header.Dim
	if len(r.slab) < dim {
		n := min(slabVectors, r.want-r.read)
		r.slab = make([]float32, max(n, 1)*dim)
	}
	vec := r.slab[:dim:dim]
	r.slab = r.slab[dim:]
	return vec
}

func (r *Reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	r.offset += int64(len(line))
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *Reader) fail(offset int64, msg string, cause error) error {
	return &ParseError{Entry: r.read, Offset: offset, Msg: msg, cause: cause}
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
