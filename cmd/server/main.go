package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/basel-ax/coloringbook/internal/config"
	"github.com/basel-ax/coloringbook/internal/infrastructure/vertex"
	"github.com/basel-ax/coloringbook/internal/render"
	"github.com/basel-ax/coloringbook/internal/repository"
	"github.com/basel-ax/coloringbook/internal/service"
	"github.com/basel-ax/coloringbook/internal/transport"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		level.Error(logger).Log("msg", "service stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger log.Logger) error {
	level.Info(logger).Log("msg", "service starting", "bucket", cfg.GCP.BucketName, "project", cfg.GCP.ProjectID, "region", cfg.GCP.Region)

	// Clients are built once and shared by all requests. Construction uses a
	// background context so credential refresh outlives the signal context.
	storageClient, err := storage.NewClient(context.Background())
	if err != nil {
		return fmt.Errorf("failed to initialize storage client: %w", err)
	}
	defer storageClient.Close()

	vertexClient, err := vertex.NewClient(context.Background(), cfg.GCP.ProjectID, cfg.GCP.Region)
	if err != nil {
		return fmt.Errorf("failed to initialize Vertex AI client: %w", err)
	}
	defer vertexClient.Close()
	level.Info(logger).Log("msg", "cloud clients initialized", "vertex_endpoint", vertex.Endpoint(cfg.GCP.Region))

	renderer := render.NewRenderer(cfg.FontPath, log.With(logger, "component", "Renderer"))
	repo := repository.NewGCSArtifactRepository(storageClient, cfg.GCP.BucketName)
	uploader := service.NewObjectStoreUploader(repo, cfg.GCP.PublicBaseURL, log.With(logger, "component", "Uploader"))
	svc := service.NewGenerationService(renderer, uploader, log.With(logger, "component", "GenerationService"))

	gin.SetMode(cfg.GinMode)
	router := transport.NewGinServer(svc, repo.Bucket(), vertexClient, log.With(logger, "component", "HTTP"))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "HTTP server listening", "addr", server.Addr)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-ctx.Done():
		level.Info(logger).Log("msg", "shutdown signal received, draining requests")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	level.Info(logger).Log("msg", "service stopped gracefully")
	return nil
}
