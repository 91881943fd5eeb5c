package blobstore

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound reports a stored name with no file behind it. Callers
// decide whether a missing blob is fatal; MediaService treats it as
// already-deleted during Delete.
var ErrNotFound = errors.New("blob not found")

// BlobStore is the byte-storage abstraction used by MediaService.
// Put derives a unique stored name from the original filename and must
// never overwrite an existing blob.
type BlobStore interface {
	Put(ctx context.Context, filename string, r io.Reader) (string, error)
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)
	Delete(ctx context.Context, storedName string) error
}
