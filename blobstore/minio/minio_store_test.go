package minio

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/hupe1980/tabview/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-tabview"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	data := []byte(`[{"id":"1","name":"John Doe"}]`)
	_, err = client.PutObject(ctx, bucket, "test-prefix/users.json", bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	require.NoError(t, err)

	store := NewStore(client, bucket, "test-prefix/")

	rc, err := store.Open(ctx, "users.json")
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), blobstore.SizeOf(rc))
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "users.json")

	_, err = store.Open(ctx, "missing.json")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestMapError(t *testing.T) {
	err := mapError(minio.ErrorResponse{Code: "NoSuchKey"})
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	other := minio.ErrorResponse{Code: "AccessDenied"}
	assert.Equal(t, error(other), mapError(other))
}
