package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Sentinel texts returned instead of errors. A caller receiving one of these
// still gets a usable prompt input; the analysis proceeds.
const (
	TextUnsupportedDocument = "Unsupported document type."
	TextScannedPDF          = "No text detected (PDF may be scanned image)"
	TextPDFFailed           = "Unable to extract text from PDF."
	TextExtractionFailed    = "Could not extract resume text."
)

// ResumeExtractor turns a remote resume file reference into plain text.
// Implementations may fail; the production extractor degrades every internal
// failure to a sentinel text and never returns an error.
type ResumeExtractor interface {
	Extract(ctx context.Context, fileURL string) (string, error)
}

type resumeExtractor struct {
	tempDir    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewResumeExtractor(tempDir string, log *zap.Logger) ResumeExtractor {
	return &resumeExtractor{
		tempDir:    tempDir,
		httpClient: &http.Client{},
		log:        log,
	}
}

// Extract implements ResumeExtractor. Download and parse failures degrade to
// sentinel texts; the error result is always nil.
func (e *resumeExtractor) Extract(ctx context.Context, fileURL string) (string, error) {
	filePath, err := e.downloadFile(ctx, fileURL)
	if err != nil {
		e.log.Warn("resume download failed",
			zap.String("url", fileURL),
			zap.Error(err),
		)
		return TextExtractionFailed, nil
	}

	defer func() {
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			e.log.Warn("failed to remove temp file",
				zap.String("path", filePath),
				zap.Error(err),
			)
		}
	}()

	return e.extractFromFile(filePath), nil
}

// downloadFile fetches the resume bytes into a uniquely named temp file so
// concurrent extractions never collide.
func (e *resumeExtractor) downloadFile(ctx context.Context, fileURL string) (string, error) {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return "", &DownloadError{URL: fileURL, Err: err}
	}
	ext := strings.ToLower(path.Ext(parsed.Path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", &DownloadError{URL: fileURL, Err: err}
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", &DownloadError{URL: fileURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &DownloadError{URL: fileURL, Status: resp.Status}
	}

	if err := os.MkdirAll(e.tempDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	fileName := fmt.Sprintf("resume_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(e.tempDir, fileName)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, resp.Body); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save temp file: %w", err)
	}

	return filePath, nil
}

func (e *resumeExtractor) extractFromFile(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return e.extractPDF(filePath)
	case ".docx":
		return e.extractDOCX(filePath)
	default:
		return TextUnsupportedDocument
	}
}

// extractPDF concatenates all text items on every page, space separated.
// The pdf library panics on some malformed files, hence the recover.
func (e *resumeExtractor) extractPDF(filePath string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("pdf extraction panicked", zap.Any("cause", r))
			text = TextPDFFailed
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		e.log.Warn("pdf extraction failed", zap.Error(err))
		return TextPDFFailed
	}
	defer f.Close()

	var builder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		for _, item := range page.Content().Text {
			if item.S == "" {
				continue
			}
			builder.WriteString(item.S)
			builder.WriteString(" ")
		}
	}

	text = strings.TrimSpace(builder.String())
	if text == "" {
		return TextScannedPDF
	}

	return text
}

// extractDOCX returns the document's raw text, or an empty string on failure.
func (e *resumeExtractor) extractDOCX(filePath string) string {
	f, err := os.Open(filePath)
	if err != nil {
		e.log.Warn("docx extraction failed", zap.Error(err))
		return ""
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return ""
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		e.log.Warn("docx extraction failed", zap.Error(err))
		return ""
	}

	var parts []string
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *docx.Paragraph, *docx.Table:
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				parts = append(parts, s)
			}
		}
	}

	return strings.Join(parts, "\n")
}
