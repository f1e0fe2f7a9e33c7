package forensics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ppiankov/crosscheck/internal/model"
)

// HTTPDetector talks to a forensics detector service over HTTP. The
// service exposes POST /analyze and answers per media kind.
type HTTPDetector struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPDetector creates a detector client for the given base URL
func NewHTTPDetector(baseURL string, timeout time.Duration) *HTTPDetector {
	return &HTTPDetector{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	File      string `json:"file"`
	MediaType string `json:"media_type"`
}

// Analyze implements MediaForensics
func (d *HTTPDetector) Analyze(ctx context.Context, fileReference string, kind model.ContentType) (*Report, error) {
	var report Report
	if err := d.post(ctx, "/analyze", analyzeRequest{File: fileReference, MediaType: string(kind)}, &report); err != nil {
		return nil, err
	}
	if report.Confidence < 0 || report.Confidence > 1 {
		return nil, fmt.Errorf("%w: forensics confidence %f out of range", model.ErrMalformedResponse, report.Confidence)
	}
	return &report, nil
}

// HTTPExtractor talks to an OCR/transcription service over HTTP. The
// service exposes POST /extract.
type HTTPExtractor struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPExtractor creates an extractor client for the given base URL
func NewHTTPExtractor(baseURL string, timeout time.Duration) *HTTPExtractor {
	return &HTTPExtractor{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Extract implements TextExtractor
func (e *HTTPExtractor) Extract(ctx context.Context, fileReference string, kind model.ContentType) (*Extraction, error) {
	var extraction Extraction
	d := &HTTPDetector{baseURL: e.baseURL, httpClient: e.httpClient}
	if err := d.post(ctx, "/extract", analyzeRequest{File: fileReference, MediaType: string(kind)}, &extraction); err != nil {
		return nil, err
	}
	if extraction.WordCount == 0 {
		extraction.WordCount = WordCount(extraction.Text)
	}
	return &extraction, nil
}

func (d *HTTPDetector) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: detector status %d", model.ErrCollaboratorUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}
	return nil
}
