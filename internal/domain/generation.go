package domain

import (
	"context"
)

// AnonymousUserID is used when a request carries no user identifier
const AnonymousUserID = "anonymous"

// GenerationRequest represents the parameters for a placeholder generation
type GenerationRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	UserID string `json:"user_id"`
}

// ResolvedUserID returns the user identifier, or AnonymousUserID when it is empty
func (r GenerationRequest) ResolvedUserID() string {
	if r.UserID == "" {
		return AnonymousUserID
	}
	return r.UserID
}

// RenderedArtifacts holds the encoded image and report for a single request
type RenderedArtifacts struct {
	Image []byte
	PDF   []byte
}

// UploadResult holds the public URLs of the uploaded artifacts
type UploadResult struct {
	ImageURL string
	PDFURL   string
}

// GenerationResponse is the payload returned to the caller on success
type GenerationResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
	PDFURL   string `json:"pdf_url"`
}

// Renderer builds the placeholder artifacts for a prompt
type Renderer interface {
	// Render draws the image and writes the report for the given prompt and user
	Render(prompt, userID string) (*RenderedArtifacts, error)
}

// Uploader persists rendered artifacts and returns where they can be fetched
type Uploader interface {
	// Upload stores both artifacts under the user's namespace
	Upload(ctx context.Context, userID string, artifacts *RenderedArtifacts) (*UploadResult, error)
}

// GenerationService defines the interface for generation operations
type GenerationService interface {
	// Generate renders and uploads the artifacts for a request
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResponse, error)
}
