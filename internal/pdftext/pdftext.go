// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext downloads PDFs and extracts their plain text.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrExtraction indicates the downloaded bytes could not be read as a
// PDF, including encrypted documents that an empty password cannot open.
var ErrExtraction = errors.New("could not extract text")

var whitespaceRE = regexp.MustCompile(`\s+`)

// Download fetches the PDF at url into memory.
func Download(ctx context.Context, client *http.Client, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading PDF: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading PDF: HTTP %d from %s", resp.StatusCode, url)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading PDF body: %w", err)
	}
	return content, nil
}

// Extract returns the plain text of a PDF, page by page, with whitespace
// runs collapsed. Pages that cannot be decoded are skipped; a document
// that yields no text at all fails with ErrExtraction.
func Extract(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty content", ErrExtraction)
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("%w: no text in document", ErrExtraction)
	}
	return out, nil
}
