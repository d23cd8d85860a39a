// Package store provides persistence for video records. One row per video;
// comments and action history live inside the row as ordered JSONB arrays, so
// a mutation and its audit entry become durable in the same single-row write.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidboard/video-annotation-go/internal/db"
	"github.com/vidboard/video-annotation-go/internal/models"
)

// MetadataProvider fetches video and channel metadata from the external
// provider. Implementations signal an unknown video id with
// youtube.ErrVideoNotFound so lazy creation can distinguish "no such video"
// from provider failure.
type MetadataProvider interface {
	FetchVideo(ctx context.Context, videoID string) (*models.VideoMetadata, error)
	FetchChannel(ctx context.Context, channelID string) (*models.ChannelMetadata, error)
}

// VideoRecordStore defines persistence operations for video records.
type VideoRecordStore interface {
	// GetOrCreate looks up a record by video id, lazily creating it from
	// provider metadata on first sight of the id.
	GetOrCreate(ctx context.Context, videoID string) (*models.VideoRecord, error)

	// Find retrieves a record with no side effects. Returns an error wrapping
	// db.ErrNotFound when the record does not exist locally.
	Find(ctx context.Context, videoID string) (*models.VideoRecord, error)

	// Save persists the full current state of a record. It is the single
	// point where comment, history and title mutations become durable.
	Save(ctx context.Context, record *models.VideoRecord) error

	// Ping checks the underlying database connection health.
	Ping(ctx context.Context) error
}

type videoStore struct {
	pool     *pgxpool.Pool
	provider MetadataProvider
}

// NewVideoStore creates a VideoRecordStore backed by PostgreSQL. The provider
// is consulted only during lazy creation.
func NewVideoStore(pool *pgxpool.Pool, provider MetadataProvider) VideoRecordStore {
	return &videoStore{pool: pool, provider: provider}
}

func (s *videoStore) GetOrCreate(ctx context.Context, videoID string) (*models.VideoRecord, error) {
	record, err := s.Find(ctx, videoID)
	if err == nil {
		return record, nil
	}
	if !db.IsNotFound(err) {
		return nil, err
	}

	// First sight of this video id: fetch metadata and create the record.
	// Provider errors pass through untouched so callers can map "unknown id"
	// and "provider failure" differently; nothing is persisted on failure.
	meta, err := s.provider.FetchVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	record = models.NewVideoRecord(videoID, meta)
	if err := s.insert(ctx, record); err != nil {
		if db.IsDuplicateKey(err) {
			// A concurrent request created the record between our Find and
			// insert. Theirs wins; read it back.
			return s.Find(ctx, videoID)
		}
		return nil, err
	}

	return record, nil
}

func (s *videoStore) Find(ctx context.Context, videoID string) (*models.VideoRecord, error) {
	query := `
		SELECT video_id, original_title, current_title, channel_title, view_count,
		       comments, action_history, created_at, updated_at
		FROM videos
		WHERE video_id = $1
	`

	record := &models.VideoRecord{}
	var commentsJSON, historyJSON []byte

	err := s.pool.QueryRow(ctx, query, videoID).Scan(
		&record.VideoID,
		&record.OriginalTitle,
		&record.CurrentTitle,
		&record.ChannelTitle,
		&record.ViewCount,
		&commentsJSON,
		&historyJSON,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, db.WrapError(err, "find video")
	}

	if err := json.Unmarshal(commentsJSON, &record.Comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	if err := json.Unmarshal(historyJSON, &record.ActionHistory); err != nil {
		return nil, fmt.Errorf("decode action history: %w", err)
	}

	return record, nil
}

func (s *videoStore) Save(ctx context.Context, record *models.VideoRecord) error {
	commentsJSON, historyJSON, err := encodeCollections(record)
	if err != nil {
		return err
	}

	record.UpdatedAt = time.Now()

	query := `
		UPDATE videos
		SET current_title = $2, comments = $3::jsonb, action_history = $4::jsonb, updated_at = $5
		WHERE video_id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		record.VideoID,
		record.CurrentTitle,
		commentsJSON,
		historyJSON,
		record.UpdatedAt,
	)
	if err != nil {
		return db.WrapError(err, "save video")
	}

	if tag.RowsAffected() == 0 {
		return db.WrapError(db.ErrNotFound, "save video")
	}

	return nil
}

func (s *videoStore) insert(ctx context.Context, record *models.VideoRecord) error {
	commentsJSON, historyJSON, err := encodeCollections(record)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO videos
		(video_id, original_title, current_title, channel_title, view_count,
		 comments, action_history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8, $9)
	`

	_, err = s.pool.Exec(ctx, query,
		record.VideoID,
		record.OriginalTitle,
		record.CurrentTitle,
		record.ChannelTitle,
		record.ViewCount,
		commentsJSON,
		historyJSON,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return db.WrapError(err, "insert video")
	}

	return nil
}

func (s *videoStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func encodeCollections(record *models.VideoRecord) (string, string, error) {
	comments := record.Comments
	if comments == nil {
		comments = []models.Comment{}
	}
	history := record.ActionHistory
	if history == nil {
		history = []models.ActionEntry{}
	}

	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return "", "", fmt.Errorf("encode comments: %w", err)
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return "", "", fmt.Errorf("encode action history: %w", err)
	}

	return string(commentsJSON), string(historyJSON), nil
}
