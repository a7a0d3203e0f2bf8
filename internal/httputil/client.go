// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// NewClient returns an http.Client with the given request timeout. A
// zero timeout falls back to 30 seconds. Every outbound call in the
// system goes through a bounded client; failures are terminal for the
// invocation, with no automatic retries.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
