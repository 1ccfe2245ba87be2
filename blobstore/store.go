package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing immutable data blobs.
type BlobStore interface {
	// Open opens a blob for reading. The caller must close the reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Sized is an optional interface for readers returned by Open that know the
// blob size before any byte is read.
type Sized interface {
	Size() int64
}

// SizeOf returns the size reported by r, or 0 when r does not know it.
func SizeOf(r io.Reader) int64 {
	if s, ok := r.(Sized); ok {
		return s.Size()
	}
	return 0
}

// NewSizedReader attaches a known size to rc.
func NewSizedReader(rc io.ReadCloser, size int64) io.ReadCloser {
	return &sizedReader{ReadCloser: rc, size: size}
}

type sizedReader struct {
	io.ReadCloser
	size int64
}

func (r *sizedReader) Size() int64 { return r.size }
