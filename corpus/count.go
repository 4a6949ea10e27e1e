package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/hupe1980/lexfeat/model"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// Opener opens a corpus file by name.
type Opener func(ctx context.Context, name string) (io.ReadCloser, error)

// Options configures counting.
type Options struct {
	// Tokenizer defaults to WordPunct.
	Tokenizer Tokenizer
	// NFC normalizes each line to Unicode NFC before tokenizing.
	NFC bool
	// Workers bounds how many files are counted at once. 0 means 1.
	Workers int
}

// CountReader tokenizes r line by line into a fresh Counter.
func CountReader(ctx context.Context, r io.Reader, opts Options) (model.Counter, error) {
	tok := opts.Tokenizer
	if tok == nil {
		tok = WordPunct
	}

	counts := model.Counter{}
	emit := counts.Add
	br := bufio.NewReaderSize(r, 256<<10)
	for lines := 0; ; lines++ {
		if lines%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		line, err := br.ReadString('\n')
		if line != "" {
			if opts.NFC {
				line = norm.NFC.String(line)
			}
			tok.Tokenize(line, emit)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return counts, nil
			}
			return nil, err
		}
	}
}

// Count counts every named file and returns the merged model.
// Any file failing to open or read fails the whole count.
func Count(ctx context.Context, names []string, open Opener, opts Options) (*model.FrequencyModel, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("corpus: no files: %w", model.ErrEmptyModel)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	var (
		mu     sync.Mutex
		merged = model.Counter{}
	)
	for _, name := range names {
		g.Go(func() error {
			rc, err := open(gctx, name)
			if err != nil {
				return fmt.Errorf("corpus: open %s: %w", name, err)
			}
			defer rc.Close()

			counts, err := CountReader(gctx, rc, opts)
			if err != nil {
				return fmt.Errorf("corpus: read %s: %w", name, err)
			}

			mu.Lock()
			merged.Merge(counts)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m, err := merged.Model()
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	return m, nil
}
