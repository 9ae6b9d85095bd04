package transport

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"

	"github.com/basel-ax/coloringbook/internal/domain"
)

// PlatformInfo describes the cloud context reported by the health endpoint
type PlatformInfo interface {
	ProjectID() string
	Location() string
}

// NewGinServer creates the Gin HTTP router serving the generation API.
func NewGinServer(svc domain.GenerationService, bucket string, platform PlatformInfo, logger log.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(logger), gin.CustomRecovery(recoverPanic(logger)))

	router.POST("/generate", makeGenerateHandler(svc, logger))
	router.GET("/health", makeHealthHandler(bucket, platform))

	return router
}

// makeGenerateHandler creates the handler for POST /generate.
func makeGenerateHandler(svc domain.GenerationService, logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.GenerationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				err = domain.ErrMissingPrompt
			} else {
				err = domain.NewError(domain.ErrorKindDecode, "decode request", err)
			}
			writeError(c, logger, err)
			return
		}

		resp, err := svc.Generate(c.Request.Context(), req)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func makeHealthHandler(bucket string, platform PlatformInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"bucket":    bucket,
			"project":   platform.ProjectID(),
			"region":    platform.Location(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// writeError reports err with the status of its kind. Validation messages are
// returned as-is; everything else is prefixed and logged in full.
func writeError(c *gin.Context, logger log.Logger, err error) {
	status := domain.StatusCode(err)
	if status == http.StatusBadRequest {
		level.Warn(logger).Log("method", c.Request.Method, "path", c.FullPath(), "err", err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	level.Error(logger).Log("method", c.Request.Method, "path", c.FullPath(), "kind", domain.KindOf(err), "err", fmt.Sprintf("%+v", err))
	c.JSON(status, gin.H{"error": "Internal Server Error: " + err.Error()})
}

func recoverPanic(logger log.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		writeError(c, logger, fmt.Errorf("panic: %v", recovered))
		c.Abort()
	}
}

func requestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		level.Info(logger).Log(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
