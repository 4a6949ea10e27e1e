package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/hupe1980/lexfeat/blobstore"
	"github.com/hupe1980/lexfeat/resource"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is a resource compression scheme chosen by file extension.
type Compression int

// Compression schemes.
const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
)

// CompressionOf returns the compression implied by name's extension.
func CompressionOf(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Decompress wraps r according to c. Closing the result does not close r.
func Decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("loader: gzip: %w", err)
		}
		return zr, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("loader: zstd: %w", err)
		}
		return zr.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// stream is a decoded resource read front to back.
type stream struct {
	io.Reader
	closers []io.Closer
}

func (s *stream) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	return errors.Join(errs...)
}

// openStream opens name for sequential reading, throttled by rc and
// decompressed by extension.
func openStream(ctx context.Context, store blobstore.BlobStore, name string, rc *resource.Controller) (*stream, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", name, err)
	}

	var r io.Reader = resource.NewRateLimitedReader(ctx, blobstore.NewReader(blob), rc)
	dr, err := Decompress(r, CompressionOf(name))
	if err != nil {
		_ = blob.Close()
		return nil, fmt.Errorf("loader: %s: %w", name, err)
	}
	return &stream{Reader: dr, closers: []io.Closer{blob, dr}}, nil
}

// stageFile returns a local file system path holding the decoded resource.
// Uncompressed local blobs are used in place; anything else is copied into
// a temporary file that cleanup removes.
func stageFile(ctx context.Context, store blobstore.BlobStore, name string, o options) (string, func(), error) {
	comp := CompressionOf(name)
	if ls, ok := store.(*blobstore.LocalStore); ok && comp == CompressionNone {
		return ls.Path(name), func() {}, nil
	}

	f, err := os.CreateTemp(o.tempDir, "lexfeat-*"+path.Ext(strings.TrimSuffix(name, path.Ext(name))))
	if err != nil {
		return "", nil, fmt.Errorf("loader: stage %s: %w", name, err)
	}
	cleanup := func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	}

	if d, ok := store.(blobstore.Downloader); ok && comp == CompressionNone {
		_, err = d.Download(ctx, name, f)
	} else {
		var s *stream
		if s, err = openStream(ctx, store, name, o.resources); err == nil {
			_, err = io.Copy(f, s)
			err = errors.Join(err, s.Close())
		}
	}
	if err == nil {
		err = f.Close()
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("loader: stage %s: %w", name, err)
	}
	return f.Name(), cleanup, nil
}
