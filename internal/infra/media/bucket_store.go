// Package media contains the blob-bucket implementation of the media store
// adapter. The bucket is addressed by a gocloud.dev URL, so local disk, GCS
// and in-memory buckets are interchangeable through configuration.
package media

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"careconnect/config"
	"careconnect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected via the media.bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// photoKeyPrefix namespaces profile photos inside the bucket.
const photoKeyPrefix = "careconnect_profiles/"

// photoExtensions maps the accepted sniffed content types to object key
// extensions. Anything outside this map is rejected.
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the media store, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns the media store adapter.
func New(params Params) (service.MediaStore, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket is not configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Media bucket opened", slog.String("bucket_url", cfg.BucketURL))

	return newBucketStore(bucket, cfg.PublicBaseURL, params.Logger), nil
}

func newBucketStore(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.MediaStore {
	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}
}

// UploadPhoto enforces the size and format constraints, writes the object
// under a fresh key and returns its durable public URL. The content type is
// sniffed from the bytes; the client-supplied filename is never trusted.
func (s *bucketStore) UploadPhoto(ctx context.Context, upload *service.MediaUpload) (string, error) {
	if upload == nil || len(upload.Data) == 0 {
		return "", service.ErrUnsupportedPhotoFormat
	}
	if len(upload.Data) > service.MaxPhotoBytes {
		return "", service.ErrPhotoTooLarge
	}

	contentType := http.DetectContentType(upload.Data)
	ext, ok := photoExtensions[contentType]
	if !ok {
		return "", service.ErrUnsupportedPhotoFormat
	}

	key := photoKeyPrefix + uuid.New().String() + ext

	opts := &blob.WriterOptions{
		ContentType: contentType,
		Metadata: map[string]string{
			// Advisory bound consumed by the image-serving CDN.
			"max-width": strconv.Itoa(service.MaxPhotoWidth),
		},
	}
	if err := s.bucket.WriteAll(ctx, key, upload.Data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write photo to bucket")
	}

	url := s.publicBaseURL + "/" + key
	s.logger.Debug("Photo stored",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int("bytes", len(upload.Data)),
	)

	return url, nil
}
