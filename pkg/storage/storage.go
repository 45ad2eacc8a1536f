package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fetchkit/pkg/file"
)

// Object describes a persisted descriptor.
type Object struct {
	// Key is the backend-relative location of the stored bytes.
	Key string
	// URL is the public URL for the object.
	URL string
	// Size is the number of bytes persisted.
	Size int64
}

// Storage is the output consumer for file descriptors. Ingest persists
// a descriptor's bytes and, on success, deletes the temporary local
// file the descriptor pointed at - ownership of temp files ends here.
type Storage interface {
	// Ingest persists the descriptor's bytes under dir and returns the
	// stored object. The descriptor itself is not modified.
	Ingest(ctx context.Context, f *file.File, dir string) (*Object, error)
	// Delete removes a stored object.
	Delete(ctx context.Context, key string) error
	// Exists checks whether an object exists.
	Exists(ctx context.Context, key string) bool
	// URL returns the public URL for a stored object.
	URL(key string) string
}

// objectKey places a descriptor under dir with a uuid path component so
// that repeated ingests of the same filename never collide.
func objectKey(dir string, f *file.File) string {
	return path.Join(dir, uuid.NewString(), f.Filename)
}

// openDescriptor returns a reader over the descriptor's bytes together
// with the temp path to remove after a successful ingest (empty when
// the bytes were in memory). Closing the reader is the caller's job.
func openDescriptor(f *file.File) (io.ReadCloser, string, error) {
	if f == nil {
		return nil, "", ErrNilDescriptor
	}
	if f.LocalPath != "" {
		src, err := os.Open(f.LocalPath)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
		}
		return src, f.LocalPath, nil
	}
	if f.Binary != nil {
		return io.NopCloser(bytes.NewReader(f.Binary)), "", nil
	}
	return nil, "", ErrNoBytes
}

// removeIngested deletes the temp file after its bytes were persisted.
// A failed removal does not fail the ingest; the bytes are already
// durable and the orphan sits in the OS temp directory.
func removeIngested(tempPath string) {
	if tempPath != "" {
		_ = os.Remove(tempPath)
	}
}
