// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("models/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	vm, err := loader.LoadVectors(ctx, loader.VectorSource{
//	    Store: store,
//	    Name:  "GoogleNews-vectors-negative300.bin.gz",
//	})
//
// # Features
//
//   - Range reads for partial fetches
//   - Parallel whole-object download through the transfer manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
