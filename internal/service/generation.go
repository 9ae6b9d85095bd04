package service

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/basel-ax/coloringbook/internal/domain"
)

// SuccessMessage is returned with the artifact URLs of a completed generation
const SuccessMessage = "Generation successfully started and results saved to GCS."

// GenerationService implements the domain.GenerationService interface
type GenerationService struct {
	renderer domain.Renderer
	uploader domain.Uploader
	logger   log.Logger
}

// NewGenerationService creates a new generation service
func NewGenerationService(renderer domain.Renderer, uploader domain.Uploader, logger log.Logger) *GenerationService {
	return &GenerationService{
		renderer: renderer,
		uploader: uploader,
		logger:   logger,
	}
}

// Generate renders the placeholder artifacts for req and uploads them
func (s *GenerationService) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResponse, error) {
	if req.Prompt == "" {
		return nil, domain.ErrMissingPrompt
	}
	userID := req.ResolvedUserID()

	level.Info(s.logger).Log("msg", "starting generation", "user_id", userID, "prompt", req.Prompt)

	artifacts, err := s.renderer.Render(req.Prompt, userID)
	if err != nil {
		return nil, domain.NewError(domain.ErrorKindRender, "render artifacts", err)
	}

	result, err := s.uploader.Upload(ctx, userID, artifacts)
	if err != nil {
		return nil, domain.NewError(domain.ErrorKindUpload, "upload artifacts", err)
	}

	level.Info(s.logger).Log("msg", "generation complete", "user_id", userID, "image_url", result.ImageURL, "pdf_url", result.PDFURL)

	return &domain.GenerationResponse{
		Message:  SuccessMessage,
		ImageURL: result.ImageURL,
		PDFURL:   result.PDFURL,
	}, nil
}
