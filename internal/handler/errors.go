package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vidboard/video-annotation-go/internal/models"
	"github.com/vidboard/video-annotation-go/internal/service"
	"github.com/vidboard/video-annotation-go/pkg/logger"
)

// handleError maps service errors onto HTTP responses. Validation failures
// are 400, unknown videos and comments are 404, everything else is an opaque
// 500 with the detail kept in the logs.
func handleError(c *gin.Context, err error) {
	switch err.(type) {
	case *service.ValidationError:
		logger.Log.Warn("Validation error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		writeError(c, http.StatusBadRequest, "Bad Request", err.Error())
	case *service.NotFoundError:
		logger.Log.Warn("Not found",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		writeError(c, http.StatusNotFound, "Not Found", err.Error())
	case *service.UpstreamError:
		logger.Log.Error("Upstream error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		writeError(c, http.StatusInternalServerError, "Internal Server Error", "Failed to reach the video metadata provider")
	case *service.ConfigurationError:
		logger.Log.Error("Configuration error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		writeError(c, http.StatusInternalServerError, "Internal Server Error", "Server is misconfigured")
	default:
		logger.Log.Error("Unexpected error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		writeError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
	}
}

func writeError(c *gin.Context, status int, errorText, message string) {
	c.JSON(status, models.ErrorResponse{
		Status:    status,
		Error:     errorText,
		Message:   message,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	})
}
