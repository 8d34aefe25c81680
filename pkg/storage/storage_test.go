package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:3000/uploads/")
	require.NoError(t, err)

	key := NewKey("visa/documents", "Passport Scan.PDF")
	assert.True(t, strings.HasPrefix(key, "visa/documents/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	require.NoError(t, s.Put(ctx, key, "application/pdf", []byte("%PDF-1.4")))

	obj, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), obj.Data)
	assert.Equal(t, "application/pdf", obj.ContentType)
	assert.Equal(t, "http://localhost:3000/uploads/"+key, s.URL(key))

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.NoError(t, s.Delete(ctx, key))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	for _, key := range []string{"", "../etc/passwd", "a/../../b", "/abs"} {
		t.Run(key, func(t *testing.T) {
			assert.Error(t, s.Put(context.Background(), key, "text/plain", []byte("x")))
		})
	}
}

func TestNewS3StorageRequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), S3Config{})
	assert.Error(t, err)
}

func TestS3PublicURL(t *testing.T) {
	s, err := NewS3Storage(context.Background(), S3Config{
		Bucket:    "docs",
		Endpoint:  "http://minio:9000",
		AccessKey: "k",
		SecretKey: "s",
		PathStyle: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/docs/posters/a.png", s.URL("posters/a.png"))
}
