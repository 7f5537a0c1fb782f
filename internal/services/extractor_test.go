package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestExtractor(t *testing.T) (ResumeExtractor, string) {
	t.Helper()
	tempDir := t.TempDir()
	return NewResumeExtractor(tempDir, zap.NewNop()), tempDir
}

func TestExtractUnsupportedDocumentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text resume"))
	}))
	defer server.Close()

	extractor, _ := newTestExtractor(t)

	text, err := extractor.Extract(context.Background(), server.URL+"/resume.txt")
	require.NoError(t, err)
	assert.Equal(t, TextUnsupportedDocument, text)
}

func TestExtractDownloadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	extractor, _ := newTestExtractor(t)

	text, err := extractor.Extract(context.Background(), server.URL+"/resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, TextExtractionFailed, text)
}

func TestExtractUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	extractor, _ := newTestExtractor(t)

	text, err := extractor.Extract(context.Background(), server.URL+"/resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, TextExtractionFailed, text)
}

func TestExtractMalformedPDF(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a pdf"))
	}))
	defer server.Close()

	extractor, _ := newTestExtractor(t)

	text, err := extractor.Extract(context.Background(), server.URL+"/resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, TextPDFFailed, text)
}

func TestExtractMalformedDOCX(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a docx"))
	}))
	defer server.Close()

	extractor, _ := newTestExtractor(t)

	text, err := extractor.Extract(context.Background(), server.URL+"/resume.docx")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestExtractCleansUpTempFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("some bytes"))
	}))
	defer server.Close()

	extractor, tempDir := newTestExtractor(t)

	urls := []string{
		server.URL + "/resume.txt",
		server.URL + "/resume.pdf",
		server.URL + "/resume.docx",
	}

	for _, url := range urls {
		_, err := extractor.Extract(context.Background(), url)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files must be removed on every exit path")
}
