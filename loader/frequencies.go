package loader

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/lexfeat/blobstore"
	"github.com/hupe1980/lexfeat/corpus"
	"github.com/hupe1980/lexfeat/model"
	"github.com/hupe1980/lexfeat/resource"
)

// CorpusSource describes a reference corpus.
type CorpusSource struct {
	Store blobstore.BlobStore
	// Prefix is joined in front of every file name.
	Prefix string
	// Files names the corpus files under Prefix. Empty counts every blob
	// listed under Prefix.
	Files []string
	// Tokenizer defaults to corpus.WordPunct.
	Tokenizer corpus.Tokenizer
	// NFC normalizes text to Unicode NFC before tokenizing.
	NFC bool
}

// LoadFrequencies counts every token of the corpus. Files are counted
// concurrently, one resource-controller worker slot per open file.
func LoadFrequencies(ctx context.Context, src CorpusSource, opts ...Option) (*model.FrequencyModel, error) {
	o := applyOptions(opts)

	names, err := corpusFiles(ctx, src)
	if err != nil {
		return nil, err
	}

	rc := o.resources
	open := func(ctx context.Context, name string) (io.ReadCloser, error) {
		if err := rc.AcquireWorker(ctx); err != nil {
			return nil, err
		}
		s, err := openStream(ctx, src.Store, name, rc)
		if err != nil {
			rc.ReleaseWorker()
			return nil, err
		}
		return &workerStream{stream: s, rc: rc}, nil
	}

	m, err := corpus.Count(ctx, names, open, corpus.Options{
		Tokenizer: src.Tokenizer,
		NFC:       src.NFC,
		Workers:   rc.Workers(),
	})
	if err != nil {
		return nil, fmt.Errorf("loader: corpus: %w", err)
	}
	return m, nil
}

func corpusFiles(ctx context.Context, src CorpusSource) ([]string, error) {
	if len(src.Files) == 0 {
		prefix := src.Prefix
		if prefix != "" && !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		names, err := src.Store.List(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("loader: list corpus %q: %w", src.Prefix, err)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("loader: corpus %q: %w", src.Prefix, blobstore.ErrNotFound)
		}
		return names, nil
	}

	names := make([]string, len(src.Files))
	for i, f := range src.Files {
		names[i] = path.Join(src.Prefix, f)
	}
	return names, nil
}

// workerStream releases its worker slot once closed.
type workerStream struct {
	*stream
	rc *resource.Controller
}

func (w *workerStream) Close() error {
	defer w.rc.ReleaseWorker()
	return w.stream.Close()
}
