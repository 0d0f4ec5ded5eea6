package service

import (
	"context"
	"io"
)

// PhotoStorage stores listing photos in an object store.
type PhotoStorage interface {
	// Put writes body under key, replacing any existing object.
	Put(ctx context.Context, key, contentType string, body io.Reader) error

	// Get opens the object stored under key. Callers close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
}
