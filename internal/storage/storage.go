package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned upload URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the interface for avatar object storage.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows a
	// PUT request uploading an object directly to the bucket.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// ObjectURL returns the stable public URL for an uploaded object.
	ObjectURL(objectKey string) string

	// ObjectKeyFromURL is the inverse of ObjectURL. It returns the
	// object key and true when the URL addresses this bucket.
	ObjectKeyFromURL(url string) (string, bool)

	// DeleteObject removes an object from the bucket.
	DeleteObject(ctx context.Context, objectKey string) error
}
