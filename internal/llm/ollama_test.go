package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOllamaChatTextContent(t *testing.T) {
	var gotRequest ollamaChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model": "qwen2.5-coder:1.5b", "message": {"role": "assistant", "content": "{\"rating\": 9}"}}`))
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "qwen2.5-coder:1.5b", zap.NewNop())

	resp, err := client.Chat(context.Background(), "analyze this candidate")
	require.NoError(t, err)

	assert.Equal(t, "qwen2.5-coder:1.5b", gotRequest.Model)
	assert.False(t, gotRequest.Stream)
	require.Len(t, gotRequest.Messages, 1)
	assert.Equal(t, "user", gotRequest.Messages[0].Role)
	assert.Equal(t, "analyze this candidate", gotRequest.Messages[0].Content)

	assert.Equal(t, ContentText, resp.Content.Kind)
	assert.Equal(t, `{"rating": 9}`, resp.Content.Text)
}

func TestOllamaChatStructuredContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model": "m", "message": {"role": "assistant", "content": {"rating": 9, "summary": "Strong fit"}}}`))
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "m", zap.NewNop())

	resp, err := client.Chat(context.Background(), "prompt")
	require.NoError(t, err)

	assert.Equal(t, ContentStructured, resp.Content.Kind)
	assert.Equal(t, float64(9), resp.Content.Value["rating"])
	assert.Equal(t, "Strong fit", resp.Content.Value["summary"])
}

func TestOllamaChatExplicitError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "m", zap.NewNop())

	_, err := client.Chat(context.Background(), "prompt")
	require.Error(t, err)

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Contains(t, modelErr.Message, "model not found")
}

func TestOllamaChatHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "m", zap.NewNop())

	_, err := client.Chat(context.Background(), "prompt")

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.Contains(t, modelErr.Message, "500")
}

func TestOllamaChatUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewOllamaClient(server.URL, "m", zap.NewNop())

	_, err := client.Chat(context.Background(), "prompt")

	var modelErr *ModelError
	require.ErrorAs(t, err, &modelErr)
}
