package llm

import (
	"context"
	"fmt"
)

// ContentKind discriminates how the model endpoint delivered the answer.
type ContentKind string

const (
	// ContentText means the message content arrived as a plain string and
	// still needs cleanup and JSON decoding downstream.
	ContentText ContentKind = "text"
	// ContentStructured means the endpoint already returned a decoded object.
	ContentStructured ContentKind = "structured"
)

// Content is the message payload of a chat response.
type Content struct {
	Kind  ContentKind
	Text  string
	Value map[string]interface{}
}

// Response is the raw, unvalidated result of a single chat call.
type Response struct {
	Model   string
	Content Content
}

// Client sends a single-turn, non-streaming prompt to a model endpoint.
type Client interface {
	Chat(ctx context.Context, prompt string) (*Response, error)
}

// ModelError reports an unreachable endpoint, a non-success status, or an
// explicit error carried in the response body.
type ModelError struct {
	Message string
	Err     error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("model error: %s", e.Message)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}
