// Package storage keeps listing photos in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"

	"farmlink/config"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// ErrObjectNotFound is returned by Get when no object exists under the key.
var ErrObjectNotFound = domainerrors.ErrNotFound.WithDetails("stored object not found")

type blobStorage struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the photo store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStorage opens the bucket named by storage.bucketUrl and closes it on shutdown.
func NewPhotoStorage(params Params) (service.PhotoStorage, error) {
	bucketURL := params.Config.Storage.BucketURL

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Photo storage ready", slog.String("bucket", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket) service.PhotoStorage {
	return &blobStorage{bucket: bucket}
}

func (s *blobStorage) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return errors.Wrapf(err, "failed to write %s", key)
	}

	return errors.WithStack(w.Close())
}

func (s *blobStorage) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to read %s", key)
	}

	return r, r.ContentType(), nil
}
