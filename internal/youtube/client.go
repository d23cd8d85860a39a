// Package youtube wraps the YouTube Data API v3 as the metadata provider for
// video records.
package youtube

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/vidboard/video-annotation-go/internal/models"
)

var (
	// ErrVideoNotFound is returned when the API knows nothing about the video id.
	ErrVideoNotFound = errors.New("video not found on YouTube")

	// ErrChannelNotFound is returned when a channel lookup comes back empty.
	ErrChannelNotFound = errors.New("channel not found on YouTube")

	// ErrUnavailable wraps transport and API failures, as opposed to the API
	// answering "no such id".
	ErrUnavailable = errors.New("YouTube API request failed")
)

// Client wraps the YouTube Data API v3 client.
type Client struct {
	service *youtube.Service
}

// NewClient creates a new YouTube API client. The API key is required; a
// missing key is a configuration fault and is rejected here rather than on
// the first request.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// FetchVideo retrieves the snippet, statistics and content details for a
// single video. An empty result set means the id is unknown to YouTube.
func (c *Client) FetchVideo(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	parts := []string{"snippet", "statistics", "contentDetails"}

	response, err := c.service.Videos.List(parts).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: fetch video %s: %v", ErrUnavailable, videoID, err)
	}

	if len(response.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	return mapVideo(response.Items[0]), nil
}

// FetchChannel retrieves the channel snippet, used for the channel thumbnail
// in the combined read.
func (c *Client) FetchChannel(ctx context.Context, channelID string) (*models.ChannelMetadata, error) {
	response, err := c.service.Channels.List([]string{"snippet"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: fetch channel %s: %v", ErrUnavailable, channelID, err)
	}

	if len(response.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	return mapChannel(response.Items[0]), nil
}

// mapVideo converts a YouTube API video response item to our metadata model.
func mapVideo(video *youtube.Video) *models.VideoMetadata {
	meta := &models.VideoMetadata{
		VideoID:    video.Id,
		Tags:       []string{},
		Thumbnails: map[string]models.Thumbnail{},
	}

	if video.Snippet != nil {
		meta.Title = video.Snippet.Title
		meta.Description = video.Snippet.Description
		meta.PublishedAt = video.Snippet.PublishedAt
		meta.ChannelID = video.Snippet.ChannelId
		meta.ChannelTitle = video.Snippet.ChannelTitle

		if video.Snippet.Tags != nil {
			meta.Tags = video.Snippet.Tags
		}

		if video.Snippet.Thumbnails != nil {
			addThumbnail(meta.Thumbnails, "default", video.Snippet.Thumbnails.Default)
			addThumbnail(meta.Thumbnails, "medium", video.Snippet.Thumbnails.Medium)
			addThumbnail(meta.Thumbnails, "high", video.Snippet.Thumbnails.High)
			addThumbnail(meta.Thumbnails, "standard", video.Snippet.Thumbnails.Standard)
			addThumbnail(meta.Thumbnails, "maxres", video.Snippet.Thumbnails.Maxres)
		}
	}

	if video.Statistics != nil {
		meta.ViewCount = int64(video.Statistics.ViewCount)
		meta.LikeCount = int64(video.Statistics.LikeCount)
		meta.CommentCount = int64(video.Statistics.CommentCount)
	}

	if video.ContentDetails != nil {
		meta.Duration = video.ContentDetails.Duration
	}

	return meta
}

func mapChannel(channel *youtube.Channel) *models.ChannelMetadata {
	meta := &models.ChannelMetadata{ChannelID: channel.Id}

	if channel.Snippet != nil {
		meta.Title = channel.Snippet.Title
		if channel.Snippet.Thumbnails != nil && channel.Snippet.Thumbnails.Default != nil {
			meta.ThumbnailURL = channel.Snippet.Thumbnails.Default.Url
		}
	}

	return meta
}

func addThumbnail(dst map[string]models.Thumbnail, key string, t *youtube.Thumbnail) {
	if t == nil {
		return
	}
	dst[key] = models.Thumbnail{URL: t.Url, Width: t.Width, Height: t.Height}
}
