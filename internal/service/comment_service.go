// Package service provides the business logic for video title edits, comments
// and their shared action history.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vidboard/video-annotation-go/internal/models"
	"github.com/vidboard/video-annotation-go/internal/store"
	"github.com/vidboard/video-annotation-go/pkg/logger"
)

// DefaultUsername is attributed to comments posted without a username when no
// override is configured.
const DefaultUsername = "Anonymous"

// CommentService handles adding and deleting comments on a video record.
type CommentService struct {
	store           store.VideoRecordStore
	defaultUsername string
}

// NewCommentService creates a new CommentService instance. An empty
// defaultUsername falls back to DefaultUsername.
func NewCommentService(videoStore store.VideoRecordStore, defaultUsername string) *CommentService {
	if defaultUsername == "" {
		defaultUsername = DefaultUsername
	}
	return &CommentService{
		store:           videoStore,
		defaultUsername: defaultUsername,
	}
}

// Add appends a comment to the video's record, creating the record from
// provider metadata on first sight of the video id. The comment and its
// COMMENT_ADD history entry are persisted by the same save.
func (s *CommentService) Add(ctx context.Context, videoID, text, username string) (*models.Comment, []models.ActionEntry, error) {
	if videoID == "" || text == "" {
		return nil, nil, &ValidationError{Message: "video ID and comment text are required"}
	}

	if username == "" {
		username = s.defaultUsername
	}

	record, err := s.store.GetOrCreate(ctx, videoID)
	if err != nil {
		return nil, nil, mapResolveError(err)
	}

	comment := record.AddComment(text, username)

	if err := s.store.Save(ctx, record); err != nil {
		return nil, nil, mapResolveError(err)
	}

	logger.Log.Info("comment added",
		zap.String("videoId", videoID),
		zap.String("commentId", comment.ID.String()),
		zap.String("username", username),
	)

	return &comment, record.ActionHistory, nil
}

// Delete removes the comment with the given id and records a COMMENT_DELETE
// entry carrying the comment's pre-removal fields. The comment id is matched
// by string equality against the canonical id, so bare string forms resolve
// to the same comment. A miss leaves the record and its history untouched.
func (s *CommentService) Delete(ctx context.Context, videoID, commentID string) ([]models.ActionEntry, error) {
	if videoID == "" || commentID == "" {
		return nil, &ValidationError{Message: "video ID and comment ID are required"}
	}

	record, err := s.store.GetOrCreate(ctx, videoID)
	if err != nil {
		return nil, mapResolveError(err)
	}

	if !record.DeleteComment(commentID) {
		return nil, &NotFoundError{Message: "comment not found"}
	}

	if err := s.store.Save(ctx, record); err != nil {
		return nil, mapResolveError(err)
	}

	logger.Log.Info("comment deleted",
		zap.String("videoId", videoID),
		zap.String("commentId", commentID),
	)

	return record.ActionHistory, nil
}
