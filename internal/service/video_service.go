package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/vidboard/video-annotation-go/internal/db"
	"github.com/vidboard/video-annotation-go/internal/models"
	"github.com/vidboard/video-annotation-go/internal/store"
	"github.com/vidboard/video-annotation-go/internal/youtube"
	"github.com/vidboard/video-annotation-go/pkg/logger"
)

// VideoService serves the combined read (provider metadata merged with stored
// state) and the standalone action-history read.
type VideoService struct {
	store    store.VideoRecordStore
	provider store.MetadataProvider
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(videoStore store.VideoRecordStore, provider store.MetadataProvider) *VideoService {
	return &VideoService{store: videoStore, provider: provider}
}

// GetVideo fetches live metadata from the provider (video first, then the
// channel keyed by the id the video lookup returned), resolves or lazily
// creates the local record, and merges the two. The stored current title
// overrides the provider title; comments, history and the original title come
// from the record.
func (s *VideoService) GetVideo(ctx context.Context, videoID string) (*models.VideoView, error) {
	if videoID == "" {
		return nil, &ValidationError{Message: "video ID is required"}
	}

	meta, err := s.provider.FetchVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, youtube.ErrVideoNotFound) {
			return nil, &NotFoundError{Message: "video not found on YouTube"}
		}
		return nil, &UpstreamError{Message: "failed to fetch video metadata", Cause: err}
	}

	// A missing channel is fatal for the combined read: the view is not
	// renderable without it, and a video pointing at a dead channel means
	// the provider response cannot be trusted.
	channel, err := s.provider.FetchChannel(ctx, meta.ChannelID)
	if err != nil {
		return nil, &UpstreamError{Message: "failed to fetch channel metadata", Cause: err}
	}

	record, err := s.store.GetOrCreate(ctx, videoID)
	if err != nil {
		return nil, mapResolveError(err)
	}

	view := &models.VideoView{
		VideoMetadata:    *meta,
		ChannelThumbnail: channel.ThumbnailURL,
		OriginalTitle:    record.OriginalTitle,
		Comments:         record.Comments,
		ActionHistory:    record.ActionHistory,
	}
	view.Title = record.CurrentTitle

	logger.Log.Debug("combined read served",
		zap.String("videoId", videoID),
		zap.Int("comments", len(view.Comments)),
		zap.Int("historyEntries", len(view.ActionHistory)),
	)

	return view, nil
}

// GetHistory returns the action history for a locally known video. Unlike the
// mutating operations this never lazily creates a record: history for a video
// nobody has touched is a not-found, not an empty list.
func (s *VideoService) GetHistory(ctx context.Context, videoID string) ([]models.ActionEntry, error) {
	if videoID == "" {
		return nil, &ValidationError{Message: "video ID is required"}
	}

	record, err := s.store.Find(ctx, videoID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, &NotFoundError{Message: "video not found"}
		}
		return nil, &PersistenceError{Message: "storage operation failed", Cause: err}
	}

	return record.ActionHistory, nil
}
