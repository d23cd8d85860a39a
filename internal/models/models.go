// Package models contains the data models and DTOs for the video annotation service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ActionType identifies the kind of mutation recorded in a video's action history.
type ActionType string

// ActionType constants define the auditable mutations on a video record.
const (
	ActionTitleChange   ActionType = "TITLE_CHANGE"
	ActionCommentAdd    ActionType = "COMMENT_ADD"
	ActionCommentDelete ActionType = "COMMENT_DELETE"
)

// Comment is a single viewer comment attached to a video record. The ID is
// assigned server-side at creation and is the only handle clients may use to
// delete the comment later.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}

// ActionData is the variant payload of an ActionEntry. Which fields are set
// depends on the entry type: TITLE_CHANGE carries the title pair, COMMENT_ADD
// carries commentId and text, COMMENT_DELETE carries the full comment snapshot
// taken before removal.
type ActionData struct {
	PreviousTitle string `json:"previousTitle,omitempty"`
	NewTitle      string `json:"newTitle,omitempty"`
	CommentID     string `json:"commentId,omitempty"`
	Text          string `json:"text,omitempty"`
	Username      string `json:"username,omitempty"`
}

// ActionEntry is one immutable record in a video's append-only action history.
type ActionEntry struct {
	ID        uuid.UUID  `json:"id"`
	Type      ActionType `json:"type"`
	Timestamp time.Time  `json:"timestamp"`
	Data      ActionData `json:"data"`
}

// VideoRecord is the persisted state for one YouTube video: the metadata
// snapshot taken at creation, the editable title, and the comment and action
// history collections.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type VideoRecord struct {
	VideoID       string        `json:"videoId"`
	OriginalTitle string        `json:"originalTitle"`
	CurrentTitle  string        `json:"currentTitle"`
	ChannelTitle  string        `json:"channelTitle"`
	ViewCount     int64         `json:"viewCount"`
	Comments      []Comment     `json:"comments"`
	ActionHistory []ActionEntry `json:"actionHistory"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// NewVideoRecord builds a fresh record from a provider metadata snapshot.
// OriginalTitle is set once here and never mutated afterwards.
func NewVideoRecord(videoID string, meta *VideoMetadata) *VideoRecord {
	now := time.Now()
	return &VideoRecord{
		VideoID:       videoID,
		OriginalTitle: meta.Title,
		CurrentTitle:  meta.Title,
		ChannelTitle:  meta.ChannelTitle,
		ViewCount:     meta.ViewCount,
		Comments:      []Comment{},
		ActionHistory: []ActionEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// appendAction records one history entry. All mutating methods below go
// through here so a mutation and its audit entry always land in the same
// in-memory record, to be persisted by a single save.
func (v *VideoRecord) appendAction(t ActionType, data ActionData) ActionEntry {
	entry := ActionEntry{
		ID:        uuid.New(),
		Type:      t,
		Timestamp: time.Now(),
		Data:      data,
	}
	v.ActionHistory = append(v.ActionHistory, entry)
	return entry
}

// ApplyTitleChange records a TITLE_CHANGE entry and then updates CurrentTitle.
// The previous title is captured before the mutation.
func (v *VideoRecord) ApplyTitleChange(newTitle string) {
	v.appendAction(ActionTitleChange, ActionData{
		PreviousTitle: v.CurrentTitle,
		NewTitle:      newTitle,
	})
	v.CurrentTitle = newTitle
}

// AddComment appends a new comment with a server-assigned ID and records the
// matching COMMENT_ADD entry.
func (v *VideoRecord) AddComment(text, username string) Comment {
	comment := Comment{
		ID:        uuid.New(),
		Text:      text,
		Username:  username,
		Timestamp: time.Now(),
	}
	v.Comments = append(v.Comments, comment)
	v.appendAction(ActionCommentAdd, ActionData{
		CommentID: comment.ID.String(),
		Text:      comment.Text,
	})
	return comment
}

// FindComment looks up a comment by the string form of its ID. Client-supplied
// IDs are only ever compared, never parsed or trusted.
func (v *VideoRecord) FindComment(commentID string) (Comment, bool) {
	for _, c := range v.Comments {
		if c.ID.String() == commentID {
			return c, true
		}
	}
	return Comment{}, false
}

// DeleteComment removes the comment with the given ID and records a
// COMMENT_DELETE entry carrying the comment's fields as they were before
// removal. Returns false if no comment matches, in which case the record is
// unchanged.
func (v *VideoRecord) DeleteComment(commentID string) bool {
	for i, c := range v.Comments {
		if c.ID.String() == commentID {
			v.Comments = append(v.Comments[:i], v.Comments[i+1:]...)
			v.appendAction(ActionCommentDelete, ActionData{
				CommentID: c.ID.String(),
				Text:      c.Text,
				Username:  c.Username,
			})
			return true
		}
	}
	return false
}

// Thumbnail is one rendition of a video or channel thumbnail.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int64  `json:"width"`
	Height int64  `json:"height"`
}

// VideoMetadata is the snapshot returned by the metadata provider for a video.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type VideoMetadata struct {
	VideoID      string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	PublishedAt  string               `json:"publishedAt"`
	Thumbnails   map[string]Thumbnail `json:"thumbnails"`
	ChannelID    string               `json:"channelId"`
	ChannelTitle string               `json:"channelTitle"`
	ViewCount    int64                `json:"viewCount"`
	LikeCount    int64                `json:"likeCount"`
	CommentCount int64                `json:"commentCount"`
	Duration     string               `json:"duration"`
	Tags         []string             `json:"tags"`
}

// ChannelMetadata is the channel snapshot used to decorate the combined read.
type ChannelMetadata struct {
	ChannelID    string `json:"channelId"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// VideoView is the combined-read response: provider metadata merged with the
// locally stored state. Title reflects the stored current title, not the
// provider's.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type VideoView struct {
	VideoMetadata
	ChannelThumbnail string        `json:"channelThumbnail"`
	OriginalTitle    string        `json:"originalTitle"`
	Comments         []Comment     `json:"comments"`
	ActionHistory    []ActionEntry `json:"actionHistory"`
}

// ErrorResponse represents an error response.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}
