package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutGet(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStorage(bucket)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "produce_photos/abc", "image/jpeg", strings.NewReader("jpeg-bytes")))

	r, contentType, err := store.Get(ctx, "produce_photos/abc")
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))
	assert.Equal(t, "image/jpeg", contentType)
}

func TestBlobStorage_GetMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	_, _, err := NewBlobStorage(bucket).Get(context.Background(), "produce_photos/missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
