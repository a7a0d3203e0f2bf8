// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package service composes the fetch, storage, and summarization stages
// behind a single-writer lock. The rotation cursor and the index are
// read-modify-write files with no storage-level locking, so the daily
// scheduler and manual requests must not interleave their writes.
package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/yubraaj11/AIDaily/internal/fetcher"
	"github.com/yubraaj11/AIDaily/internal/pdftext"
	"github.com/yubraaj11/AIDaily/internal/store"
	"github.com/yubraaj11/AIDaily/internal/summary"
	"github.com/yubraaj11/AIDaily/pkg/types"
)

// ErrNoPDF indicates the stored record carries no PDF link to process.
var ErrNoPDF = errors.New("paper has no PDF URL to process")

// Storage outcome statuses.
const (
	StatusStored = "stored"
	StatusExists = "exists"
)

// FetchOutcome reports the storage decision for one fetched paper.
type FetchOutcome struct {
	Status string       `json:"status"`
	File   string       `json:"file,omitempty"`
	Paper  *types.Paper `json:"paper"`
}

// Service is the application facade used by the CLI, the HTTP server,
// and the scheduler.
type Service struct {
	mu sync.Mutex

	Fetcher    *fetcher.Fetcher
	Store      *store.Store
	Summarizer summary.Summarizer

	// PDFClient downloads full texts for summarization.
	PDFClient *http.Client
	UserAgent string

	// FallbackAPIKey is the server-side summarization credential, used
	// when a request does not supply one.
	FallbackAPIKey string

	Log *slog.Logger
}

// FetchAndStore runs one fetch invocation: next category, feed query,
// random selection, then the storage decision. A paper whose identifier
// is already indexed short-circuits with StatusExists and no writes.
func (s *Service) FetchAndStore(ctx context.Context) (*FetchOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Fetcher.FetchOne(ctx)
	if err != nil {
		return nil, err
	}

	exists, err := s.Store.Exists(p.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return &FetchOutcome{Status: StatusExists, Paper: p}, nil
	}

	file, err := s.Store.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	if s.Log != nil {
		s.Log.Info("stored paper", "id", p.ID, "file", file)
	}
	return &FetchOutcome{Status: StatusStored, File: file, Paper: p}, nil
}

// Summarize runs the summary pipeline for a stored paper: PDF download,
// text extraction, model call, record rewrite. A record that already
// carries summary text is returned unchanged without invoking any
// collaborator.
func (s *Service) Summarize(ctx context.Context, paperID, apiKey string) (*types.Paper, error) {
	p, err := s.Store.Get(ctx, paperID)
	if err != nil {
		return nil, err
	}
	if p.Summarized() {
		if s.Log != nil {
			s.Log.Info("paper already summarized", "id", paperID)
		}
		return p, nil
	}
	if p.PDFURL == "" {
		return nil, ErrNoPDF
	}

	key := apiKey
	if strings.TrimSpace(key) == "" {
		key = s.FallbackAPIKey
	}

	content, err := pdftext.Download(ctx, s.PDFClient, p.PDFURL, s.UserAgent)
	if err != nil {
		return nil, err
	}
	text, err := pdftext.Extract(content)
	if err != nil {
		return nil, err
	}

	summarized, err := s.Summarizer.Summarize(ctx, text, key)
	if err != nil {
		return nil, err
	}

	p.SummarizedText = summarized

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Store.Rewrite(ctx, p); err != nil {
		return nil, err
	}
	if s.Log != nil {
		s.Log.Info("summary attached", "id", paperID, "length", len(summarized))
	}
	return p, nil
}

// Paper returns the stored record for id.
func (s *Service) Paper(ctx context.Context, id string) (*types.Paper, error) {
	return s.Store.Get(ctx, id)
}

// Today returns the current date and the papers stored on it.
func (s *Service) Today(ctx context.Context) (string, []*types.Paper, error) {
	return s.Store.Today(ctx)
}

// History returns stored papers grouped by date, newest first, windowed
// to the last days (0 = all time).
func (s *Service) History(ctx context.Context, days int) ([]store.DayGroup, error) {
	return s.Store.History(ctx, days)
}

// Cached returns the dedup-index size, reported by the health endpoint.
func (s *Service) Cached() (int, error) {
	return s.Store.CachedCount()
}
