// Package blobstore abstracts where model resources live.
//
// Vector tables and reference corpora are read-only blobs addressed by name
// inside a store. The loader only ever reads them front to back, so the
// interface is small:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    List(ctx, prefix) ([]string, error)
//	}
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped
//   - MemoryStore: in-process blobs, mostly for tests
//   - s3.Store: Amazon S3 with ranged reads and parallel whole-object download
//   - minio.Store: MinIO and other S3-compatible services
//
// Remote stores may also implement Downloader, which the loader prefers for
// multi-gigabyte resources over many small ranged reads.
package blobstore
