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

// AddCommentRequest is the body of POST /video/comment.
type AddCommentRequest struct {
	VideoID  string `json:"videoId"`
	Text     string `json:"text"`
	Username string `json:"username"`
}

// UpdateTitleRequest is the body of PUT /video/title.
type UpdateTitleRequest struct {
	VideoID  string `json:"videoId"`
	NewTitle string `json:"newTitle"`
}

// VideoHandler handles comment, title and history HTTP requests.
type VideoHandler struct {
	commentService *service.CommentService
	titleService   *service.TitleService
	videoService   *service.VideoService
}

// NewVideoHandler creates a new VideoHandler instance.
func NewVideoHandler(
	commentService *service.CommentService,
	titleService *service.TitleService,
	videoService *service.VideoService,
) *VideoHandler {
	return &VideoHandler{
		commentService: commentService,
		titleService:   titleService,
		videoService:   videoService,
	}
}

// AddComment appends a comment to a video and returns it together with the
// full action history.
func (h *VideoHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Invalid request payload",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:    http.StatusBadRequest,
			Error:     "Bad Request",
			Message:   "Invalid request payload: " + err.Error(),
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	comment, history, err := h.commentService.Add(c.Request.Context(), req.VideoID, req.Text, req.Username)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"comment":       comment,
		"actionHistory": history,
	})
}

// DeleteComment removes a comment identified by the videoId and commentId
// query parameters.
func (h *VideoHandler) DeleteComment(c *gin.Context) {
	videoID := c.Query("videoId")
	commentID := c.Query("commentId")

	history, err := h.commentService.Delete(c.Request.Context(), videoID, commentID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Comment deleted successfully",
		"actionHistory": history,
	})
}

// UpdateTitle changes a video's current title.
func (h *VideoHandler) UpdateTitle(c *gin.Context) {
	var req UpdateTitleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Invalid request payload",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:    http.StatusBadRequest,
			Error:     "Bad Request",
			Message:   "Invalid request payload: " + err.Error(),
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	currentTitle, history, err := h.titleService.UpdateTitle(c.Request.Context(), req.VideoID, req.NewTitle)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Title updated successfully",
		"currentTitle":  currentTitle,
		"actionHistory": history,
	})
}

// GetHistory returns the action history for a locally known video.
func (h *VideoHandler) GetHistory(c *gin.Context) {
	videoID := c.Query("videoId")

	history, err := h.videoService.GetHistory(c.Request.Context(), videoID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"actionHistory": history,
	})
}
