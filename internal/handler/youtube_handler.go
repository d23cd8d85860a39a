// Package handler provides HTTP request handlers for the application.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vidboard/video-annotation-go/internal/service"
	"github.com/vidboard/video-annotation-go/pkg/logger"
)

// YouTubeHandler serves the combined video view.
type YouTubeHandler struct {
	videoService *service.VideoService
}

// NewYouTubeHandler creates a new YouTubeHandler instance.
func NewYouTubeHandler(videoService *service.VideoService) *YouTubeHandler {
	return &YouTubeHandler{videoService: videoService}
}

// GetVideo returns live provider metadata merged with the stored record for
// the videoId query parameter.
func (h *YouTubeHandler) GetVideo(c *gin.Context) {
	videoID := c.Query("videoId")

	logger.Log.Debug("video view requested", zap.String("videoId", videoID))

	view, err := h.videoService.GetVideo(c.Request.Context(), videoID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
