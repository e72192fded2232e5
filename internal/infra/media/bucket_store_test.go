package media

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"careconnect/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

var (
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}
	pngBytes  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	webpBytes = append([]byte("RIFF\x24\x00\x00\x00WEBP"), []byte("VP8 ")...)
)

func newTestStore(t *testing.T) service.MediaStore {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newBucketStore(bucket, "https://media.careconnect.example.com/", logger)
}

func TestBucketStore_UploadPhoto_JPEG(t *testing.T) {
	store := newTestStore(t)

	url, err := store.UploadPhoto(context.Background(), &service.MediaUpload{
		Filename: "portrait.jpeg",
		Data:     jpegBytes,
	})
	require.NoError(t, err)

	// Durable URL: public base without its trailing slash, then the
	// namespaced key with an extension derived from the sniffed type.
	assert.True(t, strings.HasPrefix(url, "https://media.careconnect.example.com/careconnect_profiles/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)
}

func TestBucketStore_UploadPhoto_PNGAndWEBP(t *testing.T) {
	store := newTestStore(t)

	url, err := store.UploadPhoto(context.Background(), &service.MediaUpload{Filename: "p", Data: pngBytes})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	url, err = store.UploadPhoto(context.Background(), &service.MediaUpload{Filename: "w", Data: webpBytes})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".webp"), url)
}

func TestBucketStore_UploadPhoto_FilenameIsNotTrusted(t *testing.T) {
	store := newTestStore(t)

	// A PDF renamed to .png is still rejected: only the bytes count.
	pdfBytes := []byte("%PDF-1.4 fake document body")
	_, err := store.UploadPhoto(context.Background(), &service.MediaUpload{
		Filename: "innocent.png",
		Data:     pdfBytes,
	})
	assert.ErrorIs(t, err, service.ErrUnsupportedPhotoFormat)
}

func TestBucketStore_UploadPhoto_TooLarge(t *testing.T) {
	store := newTestStore(t)

	oversized := make([]byte, service.MaxPhotoBytes+1)
	copy(oversized, jpegBytes)

	_, err := store.UploadPhoto(context.Background(), &service.MediaUpload{
		Filename: "huge.jpg",
		Data:     oversized,
	})
	assert.ErrorIs(t, err, service.ErrPhotoTooLarge)
}

func TestBucketStore_UploadPhoto_EmptyUpload(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UploadPhoto(context.Background(), nil)
	assert.ErrorIs(t, err, service.ErrUnsupportedPhotoFormat)

	_, err = store.UploadPhoto(context.Background(), &service.MediaUpload{Filename: "empty.jpg"})
	assert.ErrorIs(t, err, service.ErrUnsupportedPhotoFormat)
}

func TestBucketStore_UploadPhoto_FreshKeyPerUpload(t *testing.T) {
	store := newTestStore(t)

	first, err := store.UploadPhoto(context.Background(), &service.MediaUpload{Filename: "a.jpg", Data: jpegBytes})
	require.NoError(t, err)
	second, err := store.UploadPhoto(context.Background(), &service.MediaUpload{Filename: "a.jpg", Data: jpegBytes})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
