// Package blobstore provides read access to immutable data blobs.
//
// Sources use a BlobStore to fetch the documents a record store is loaded
// from. Implementations exist for the local file system, memory (tests), and,
// in subpackages, AWS S3 and MinIO.
package blobstore
