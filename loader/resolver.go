package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hupe1980/lexfeat/blobstore"
	"github.com/hupe1980/lexfeat/blobstore/minio"
	"github.com/hupe1980/lexfeat/blobstore/s3"
)

// MinIOConfig locates the server behind minio:// locations.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Secure    bool
}

// Resolver turns location strings into a store and a name within it.
type Resolver struct {
	// Memory backs mem:// locations.
	Memory *blobstore.MemoryStore
	// MinIO configures minio:// locations.
	MinIO MinIOConfig
	// S3 holds extra options for s3:// stores. Credentials and region come
	// from the AWS default chain.
	S3 []func(*s3.Options)
}

// ResolveFile returns the store holding the resource at loc and its name there.
func (r *Resolver) ResolveFile(ctx context.Context, loc string) (blobstore.BlobStore, string, error) {
	scheme, rest, err := splitLocation(loc)
	if err != nil {
		return nil, "", err
	}
	if scheme == "" {
		return blobstore.NewLocalStore(filepath.Dir(loc)), filepath.Base(loc), nil
	}

	bucket, key, _ := strings.Cut(rest, "/")
	if scheme == "mem" {
		key = rest
	}
	if key == "" {
		return nil, "", fmt.Errorf("loader: %q names no object", loc)
	}
	store, err := r.store(ctx, scheme, bucket)
	if err != nil {
		return nil, "", err
	}
	return store, key, nil
}

// ResolveDir returns the store holding the directory at loc and the prefix
// under which its blobs are named.
func (r *Resolver) ResolveDir(ctx context.Context, loc string) (blobstore.BlobStore, string, error) {
	scheme, rest, err := splitLocation(loc)
	if err != nil {
		return nil, "", err
	}
	if scheme == "" {
		return blobstore.NewLocalStore(loc), "", nil
	}

	bucket, prefix, _ := strings.Cut(rest, "/")
	if scheme == "mem" {
		prefix = rest
	}
	store, err := r.store(ctx, scheme, bucket)
	if err != nil {
		return nil, "", err
	}
	return store, strings.Trim(prefix, "/"), nil
}

func (r *Resolver) store(ctx context.Context, scheme, bucket string) (blobstore.BlobStore, error) {
	switch scheme {
	case "mem":
		if r.Memory == nil {
			return nil, fmt.Errorf("%w: mem (no memory store configured)", ErrUnsupportedScheme)
		}
		return r.Memory, nil
	case "s3":
		return s3.New(ctx, bucket, r.S3...)
	case "minio":
		if r.MinIO.Endpoint == "" {
			return nil, fmt.Errorf("%w: minio (no endpoint configured)", ErrUnsupportedScheme)
		}
		return minio.New(r.MinIO.Endpoint, bucket,
			minio.WithCredentials(r.MinIO.AccessKey, r.MinIO.SecretKey),
			minio.WithSecure(r.MinIO.Secure),
		)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

func splitLocation(loc string) (scheme, rest string, err error) {
	if strings.TrimSpace(loc) == "" {
		return "", "", ErrNoLocation
	}
	scheme, rest, ok := strings.Cut(loc, "://")
	if !ok {
		return "", loc, nil
	}
	if scheme == "" || rest == "" {
		return "", "", fmt.Errorf("loader: malformed location %q", loc)
	}
	return strings.ToLower(scheme), rest, nil
}
