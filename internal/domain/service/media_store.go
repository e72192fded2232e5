package service

import (
	"context"
	"errors"
)

// Upload constraints enforced by every MediaStore implementation. The width
// bound is advisory metadata for the serving side; the store itself only
// persists bytes.
const (
	MaxPhotoBytes = 5 << 20 // 5 MB
	MaxPhotoWidth = 600
)

// Media store errors. Constraint violations are distinguished from provider
// failures so the caller can map them to client errors rather than 500s.
var (
	ErrPhotoTooLarge          = errors.New("photo exceeds size limit")
	ErrUnsupportedPhotoFormat = errors.New("unsupported photo format")
)

// MediaUpload is an in-memory photo attached to a create or update request.
type MediaUpload struct {
	Filename string
	Data     []byte
}

// MediaStore is the media provider adapter: it accepts a byte stream and
// returns a durable, publicly fetchable URL.
type MediaStore interface {
	UploadPhoto(ctx context.Context, upload *MediaUpload) (string, error)
}
