package service

import (
	"errors"
	"fmt"

	"github.com/vidboard/video-annotation-go/internal/db"
	"github.com/vidboard/video-annotation-go/internal/youtube"
)

// ValidationError represents missing or empty required input. Checked before
// any I/O; maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError represents an unknown video or comment, whether absent from
// the local store or from the external metadata provider. Maps to HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConfigurationError represents a missing process-wide input such as the
// provider credential. A server-side fault; maps to HTTP 500.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	return withCause(e.Message, e.Cause)
}

// UpstreamError represents an unexpected metadata provider failure. Maps to
// HTTP 500.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	return withCause(e.Message, e.Cause)
}

// PersistenceError represents a storage failure. Maps to HTTP 500.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type PersistenceError struct {
	Message string
	Cause   error
}

func (e *PersistenceError) Error() string {
	return withCause(e.Message, e.Cause)
}

func withCause(message string, cause error) string {
	if cause == nil {
		return message
	}
	return fmt.Sprintf("%s: %v", message, cause)
}

// mapResolveError classifies errors coming back from the store's resolve and
// save paths into the service error taxonomy. Provider sentinels and the
// store's not-found sentinel become NotFoundError; marked provider failures
// become UpstreamError; everything else is a storage fault.
func mapResolveError(err error) error {
	switch {
	case errors.Is(err, youtube.ErrVideoNotFound):
		return &NotFoundError{Message: "video not found on YouTube"}
	case errors.Is(err, youtube.ErrChannelNotFound), errors.Is(err, youtube.ErrUnavailable):
		return &UpstreamError{Message: "metadata provider request failed", Cause: err}
	case db.IsNotFound(err):
		return &NotFoundError{Message: "video not found"}
	default:
		return &PersistenceError{Message: "storage operation failed", Cause: err}
	}
}
