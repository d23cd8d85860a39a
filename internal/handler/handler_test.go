package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/vidboard/video-annotation-go/internal/db"
	"github.com/vidboard/video-annotation-go/internal/models"
	"github.com/vidboard/video-annotation-go/internal/youtube"
	"github.com/vidboard/video-annotation-go/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	// Initialize logger to prevent nil pointer errors
	_ = logger.Init("error", "")
}

type fakeProvider struct {
	videos   map[string]*models.VideoMetadata
	channels map[string]*models.ChannelMetadata
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		videos:   make(map[string]*models.VideoMetadata),
		channels: make(map[string]*models.ChannelMetadata),
	}
}

func (p *fakeProvider) addVideo(videoID, title, channelID, channelTitle string) {
	p.videos[videoID] = &models.VideoMetadata{
		VideoID:      videoID,
		Title:        title,
		ChannelID:    channelID,
		ChannelTitle: channelTitle,
		ViewCount:    42,
		Thumbnails:   map[string]models.Thumbnail{},
		Tags:         []string{},
	}
	p.channels[channelID] = &models.ChannelMetadata{
		ChannelID:    channelID,
		Title:        channelTitle,
		ThumbnailURL: "https://yt3.ggpht.com/" + channelID + "/default.jpg",
	}
}

func (p *fakeProvider) FetchVideo(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	meta, ok := p.videos[videoID]
	if !ok {
		return nil, youtube.ErrVideoNotFound
	}
	return meta, nil
}

func (p *fakeProvider) FetchChannel(ctx context.Context, channelID string) (*models.ChannelMetadata, error) {
	meta, ok := p.channels[channelID]
	if !ok {
		return nil, youtube.ErrChannelNotFound
	}
	return meta, nil
}

type fakeStore struct {
	records  map[string]*models.VideoRecord
	provider *fakeProvider
	pingErr  error
	saveErr  error
}

func newFakeStore(provider *fakeProvider) *fakeStore {
	return &fakeStore{
		records:  make(map[string]*models.VideoRecord),
		provider: provider,
	}
}

func (s *fakeStore) GetOrCreate(ctx context.Context, videoID string) (*models.VideoRecord, error) {
	if record, ok := s.records[videoID]; ok {
		return record, nil
	}
	meta, err := s.provider.FetchVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	record := models.NewVideoRecord(videoID, meta)
	s.records[videoID] = record
	return record, nil
}

func (s *fakeStore) Find(ctx context.Context, videoID string) (*models.VideoRecord, error) {
	record, ok := s.records[videoID]
	if !ok {
		return nil, fmt.Errorf("find video: %w", db.ErrNotFound)
	}
	return record, nil
}

func (s *fakeStore) Save(ctx context.Context, record *models.VideoRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records[record.VideoID] = record
	return nil
}

func (s *fakeStore) Ping(ctx context.Context) error {
	return s.pingErr
}

var errPingFailed = errors.New("connection refused")
