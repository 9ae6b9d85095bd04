package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// ArtifactRepository defines the interface for artifact blob storage
type ArtifactRepository interface {
	Save(ctx context.Context, key, contentType string, data []byte) error
	Bucket() string
}

// GCSArtifactRepository implements ArtifactRepository for Google Cloud Storage
type GCSArtifactRepository struct {
	client *storage.Client
	bucket string
}

// NewGCSArtifactRepository creates a new Cloud Storage artifact repository
func NewGCSArtifactRepository(client *storage.Client, bucket string) *GCSArtifactRepository {
	return &GCSArtifactRepository{client: client, bucket: bucket}
}

// Bucket returns the name of the bucket artifacts are written to
func (r *GCSArtifactRepository) Bucket() string {
	return r.bucket
}

// Save writes data to key with the given content type, replacing any existing object
func (r *GCSArtifactRepository) Save(ctx context.Context, key, contentType string, data []byte) error {
	w := r.client.Bucket(r.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write gs://%s/%s: %w", r.bucket, key, err)
	}

	// Close commits the object; most failures only surface here.
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to upload gs://%s/%s: %w", r.bucket, key, err)
	}

	return nil
}
