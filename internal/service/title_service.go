package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vidboard/video-annotation-go/internal/models"
	"github.com/vidboard/video-annotation-go/internal/store"
	"github.com/vidboard/video-annotation-go/pkg/logger"
)

// TitleService handles edits to a video's displayed title.
type TitleService struct {
	store store.VideoRecordStore
}

// NewTitleService creates a new TitleService instance.
func NewTitleService(videoStore store.VideoRecordStore) *TitleService {
	return &TitleService{store: videoStore}
}

// UpdateTitle sets a new current title, creating the record from provider
// metadata on first sight of the video id. The TITLE_CHANGE entry captures
// the title as it was before the mutation; entry and title land in one save.
// The original title is never touched.
func (s *TitleService) UpdateTitle(ctx context.Context, videoID, newTitle string) (string, []models.ActionEntry, error) {
	if videoID == "" || newTitle == "" {
		return "", nil, &ValidationError{Message: "video ID and new title are required"}
	}

	record, err := s.store.GetOrCreate(ctx, videoID)
	if err != nil {
		return "", nil, mapResolveError(err)
	}

	previous := record.CurrentTitle
	record.ApplyTitleChange(newTitle)

	if err := s.store.Save(ctx, record); err != nil {
		return "", nil, mapResolveError(err)
	}

	logger.Log.Info("title updated",
		zap.String("videoId", videoID),
		zap.String("previousTitle", previous),
		zap.String("newTitle", newTitle),
	)

	return record.CurrentTitle, record.ActionHistory, nil
}
