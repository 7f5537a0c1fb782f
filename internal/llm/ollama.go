package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"hirehub/hirehub-api/internal/logger"
)

const chatEndpoint = "/api/chat"

const maxLogPreview = 200

// OllamaClient talks to an Ollama-compatible chat endpoint.
type OllamaClient struct {
	baseURL    string
	modelName  string
	httpClient *http.Client
	log        *zap.Logger
}

func NewOllamaClient(baseURL, modelName string, log *zap.Logger) *OllamaClient {
	return &OllamaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		modelName:  modelName,
		httpClient: &http.Client{},
		log:        log,
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Model   string `json:"model"`
	Message struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"message"`
	Error string `json:"error"`
}

// Chat implements Client. The call is single-turn and non-streaming; the
// full prompt travels as one user message.
func (c *OllamaClient) Chat(ctx context.Context, prompt string) (*Response, error) {
	payload := ollamaChatRequest{
		Model:    c.modelName,
		Messages: []ollamaMessage{{Role: "user", Content: prompt}},
		Stream:   false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ModelError{Message: "failed to encode chat request", Err: err}
	}

	c.log.Debug("ollama chat request",
		zap.String("model", c.modelName),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, maxLogPreview)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &ModelError{Message: "failed to build chat request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ModelError{Message: "model endpoint unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ModelError{Message: "failed to read model response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ModelError{
			Message: fmt.Sprintf("model endpoint returned status %d: %s",
				resp.StatusCode, logger.TruncateForLog(string(raw), maxLogPreview)),
		}
	}

	var decoded ollamaChatResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &ModelError{Message: "failed to decode model response", Err: err}
	}

	if decoded.Error != "" {
		return nil, &ModelError{Message: decoded.Error}
	}

	content, err := decodeContent(decoded.Message.Content)
	if err != nil {
		return nil, &ModelError{Message: "unexpected message content shape", Err: err}
	}

	c.log.Debug("ollama chat response",
		zap.String("model", decoded.Model),
		zap.String("content_kind", string(content.Kind)),
		zap.String("content_preview", logger.TruncateForLog(content.Text, maxLogPreview)),
	)

	return &Response{Model: decoded.Model, Content: content}, nil
}

// decodeContent keeps the message content open-ended: a string stays text,
// an object becomes structured. Validation belongs to the normalizer.
func decodeContent(raw json.RawMessage) (Content, error) {
	if len(raw) == 0 {
		return Content{Kind: ContentText, Text: ""}, nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return Content{Kind: ContentText, Text: text}, nil
	}

	var value map[string]interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return Content{}, err
	}

	return Content{Kind: ContentStructured, Value: value}, nil
}
