// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summary generates structured paper summaries through the
// Gemini API. Failures are classified at this boundary from the HTTP
// status and response fields, never by sniffing message text.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Reason classifies a summarization failure.
type Reason string

const (
	ReasonInvalidCredential Reason = "invalid_credential"
	ReasonQuotaExceeded     Reason = "quota_exceeded"
	ReasonContentRejected   Reason = "content_rejected"
	ReasonOther             Reason = "other"
)

// Error is a classified summarization failure.
type Error struct {
	Reason Reason
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("summarization failed (%s): %s", e.Reason, e.Detail)
}

// ReasonOf returns the classification of err, or ReasonOther for errors
// that did not come from this package.
func ReasonOf(err error) Reason {
	var se *Error
	if errors.As(err, &se) {
		return se.Reason
	}
	return ReasonOther
}

// Summarizer produces a structured summary for extracted paper text.
type Summarizer interface {
	Summarize(ctx context.Context, text, apiKey string) (string, error)
}

// geminiAPIBase is the generateContent endpoint root. Declared as a var
// so tests can substitute an httptest server.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta/models"

const (
	defaultModel    = "gemini-2.5-pro"
	defaultMaxChars = 8000
)

const summarizePrompt = `Please summarize the following research paper in a structured format with these 5 sections:

1. Introduction/Core Idea
2. Methodology
3. Mathematical Equations
4. Limitations
5. Conclusion

Research Paper Text:
%s`

// GeminiClient calls the Gemini generateContent API.
type GeminiClient struct {
	Client *http.Client

	// Model defaults to gemini-2.5-pro.
	Model string

	// MaxChars truncates the input text before prompting (default 8000).
	MaxChars int
}

// Gemini generateContent JSON structures.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Summarize sends the text to the model and returns the generated
// summary. A blank credential fails immediately with
// ReasonInvalidCredential, without a network call.
func (c *GeminiClient) Summarize(ctx context.Context, text, apiKey string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", &Error{Reason: ReasonInvalidCredential, Detail: "API key is required"}
	}

	maxChars := c.MaxChars
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}
	if len(text) > maxChars {
		text = text[:maxChars]
	}

	model := c.Model
	if model == "" {
		model = defaultModel
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: fmt.Sprintf(summarizePrompt, text)}}}},
	})
	if err != nil {
		return "", &Error{Reason: ReasonOther, Detail: fmt.Sprintf("marshaling request: %v", err)}
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiAPIBase, model, url.QueryEscape(apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Reason: ReasonOther, Detail: fmt.Sprintf("creating request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", &Error{Reason: ReasonOther, Detail: fmt.Sprintf("Gemini API request: %v", err)}
	}
	defer resp.Body.Close()

	if reason, ok := classifyStatus(resp.StatusCode); ok {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &Error{
			Reason: reason,
			Detail: fmt.Sprintf("Gemini API returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))),
		}
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", &Error{Reason: ReasonOther, Detail: fmt.Sprintf("parsing Gemini response: %v", err)}
	}

	if gr.PromptFeedback.BlockReason != "" {
		return "", &Error{
			Reason: ReasonContentRejected,
			Detail: "content blocked by safety filters: " + gr.PromptFeedback.BlockReason,
		}
	}

	var b strings.Builder
	for _, cand := range gr.Candidates {
		for _, part := range cand.Content.Parts {
			b.WriteString(part.Text)
		}
		break
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", &Error{Reason: ReasonOther, Detail: "empty response from Gemini API"}
	}
	return out, nil
}

// classifyStatus maps a non-OK HTTP status to a failure reason.
func classifyStatus(status int) (Reason, bool) {
	switch {
	case status == http.StatusOK:
		return "", false
	case status == http.StatusTooManyRequests:
		return ReasonQuotaExceeded, true
	case status == http.StatusUnauthorized || status == http.StatusForbidden || status == http.StatusBadRequest:
		return ReasonInvalidCredential, true
	default:
		return ReasonOther, true
	}
}
