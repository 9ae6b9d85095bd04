package service

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/basel-ax/coloringbook/internal/domain"
	"github.com/basel-ax/coloringbook/internal/repository"
)

const (
	ContentTypePNG = "image/png"
	ContentTypePDF = "application/pdf"
)

// ImageKey returns the object key of a user's image
func ImageKey(userID, token string) string {
	return fmt.Sprintf("output/%s/image_%s.png", userID, token)
}

// ReportKey returns the object key of a user's report
func ReportKey(userID, token string) string {
	return fmt.Sprintf("output/%s/report_%s.pdf", userID, token)
}

// ObjectStoreUploader implements domain.Uploader on top of an ArtifactRepository
type ObjectStoreUploader struct {
	repo     repository.ArtifactRepository
	baseURL  string
	newToken func() (string, error)
	logger   log.Logger
}

// NewObjectStoreUploader creates an uploader that publishes URLs under baseURL
func NewObjectStoreUploader(repo repository.ArtifactRepository, baseURL string, logger log.Logger) *ObjectStoreUploader {
	return &ObjectStoreUploader{
		repo:     repo,
		baseURL:  baseURL,
		newToken: newObjectToken,
		logger:   logger,
	}
}

// newObjectToken returns a time-ordered UUID, so keys sort by creation and
// stay distinct across requests, processes and restarts
func newObjectToken() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Upload implements domain.Uploader. The image is written first; a failed
// report upload leaves the image in place.
func (u *ObjectStoreUploader) Upload(ctx context.Context, userID string, artifacts *domain.RenderedArtifacts) (*domain.UploadResult, error) {
	token, err := u.newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate object token: %w", err)
	}

	imageKey := ImageKey(userID, token)
	pdfKey := ReportKey(userID, token)

	if err := u.repo.Save(ctx, imageKey, ContentTypePNG, artifacts.Image); err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	level.Debug(u.logger).Log("msg", "object saved", "key", imageKey, "bytes", len(artifacts.Image))

	if err := u.repo.Save(ctx, pdfKey, ContentTypePDF, artifacts.PDF); err != nil {
		return nil, fmt.Errorf("failed to upload report: %w", err)
	}
	level.Debug(u.logger).Log("msg", "object saved", "key", pdfKey, "bytes", len(artifacts.PDF))

	return &domain.UploadResult{
		ImageURL: u.PublicURL(imageKey),
		PDFURL:   u.PublicURL(pdfKey),
	}, nil
}

// PublicURL returns the public address of key. Bucket read access is not checked.
func (u *ObjectStoreUploader) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", u.baseURL, u.repo.Bucket(), key)
}
