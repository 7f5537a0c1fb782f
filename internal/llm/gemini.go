package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"hirehub/hirehub-api/internal/logger"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiClient is an alternative model backend built on the Gemini API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	log       *zap.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string, log *zap.Logger) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if modelName = strings.TrimSpace(modelName); modelName == "" {
		modelName = defaultGeminiModel
	}

	return &GeminiClient{client: client, modelName: modelName, log: log}, nil
}

// Chat implements Client. Gemini always answers with text, so the content
// arrives as the text variant and flows through the same cleanup path.
func (c *GeminiClient) Chat(ctx context.Context, prompt string) (*Response, error) {
	temperature := float32(0.3)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	c.log.Debug("gemini chat request",
		zap.String("model", c.modelName),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, maxLogPreview)),
	)

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return nil, &ModelError{Message: "failed to generate content", Err: err}
	}

	if resp == nil {
		return nil, &ModelError{Message: "gemini api returned nil response"}
	}

	text := resp.Text()
	if text == "" {
		return nil, &ModelError{Message: "no text content in gemini response"}
	}

	return &Response{
		Model:   c.modelName,
		Content: Content{Kind: ContentText, Text: text},
	}, nil
}
