package services

import "fmt"

// ValidationError reports missing or malformed caller input. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// AuthorizationError reports a requester that does not own the job post.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// DownloadError reports a failed resume transfer. The extractor degrades it
// to a sentinel text before it can reach other components.
type DownloadError struct {
	URL    string
	Status string
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("failed to download file: %s", e.Status)
	}
	return fmt.Sprintf("failed to download file: %v", e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// ParseError reports model output that could not be decoded after cleanup.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmptyResultError means every candidate in a non-empty batch failed. A batch
// with zero pending applications is a success, not this error.
type EmptyResultError struct {
	FailedCount int
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("all %d analysis attempts failed", e.FailedCount)
}
