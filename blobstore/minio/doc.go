// Package minio provides a MinIO implementation of the blobstore.BlobStore interface.
//
// Works with MinIO and any S3-compatible service reachable through minio-go
// (Ceph RGW, SeaweedFS, Garage, ...).
//
//	store, err := minio.New("localhost:9000", "models",
//	    minio.WithCredentials("minioadmin", "minioadmin"),
//	)
package minio
