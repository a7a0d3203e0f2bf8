// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the /ai-daily/v1 JSON API and the daily fetch
// scheduler.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/yubraaj11/AIDaily/internal/feed"
	"github.com/yubraaj11/AIDaily/internal/fetcher"
	"github.com/yubraaj11/AIDaily/internal/pdftext"
	"github.com/yubraaj11/AIDaily/internal/service"
	"github.com/yubraaj11/AIDaily/internal/store"
	"github.com/yubraaj11/AIDaily/internal/summary"
)

const apiPrefix = "/ai-daily/v1"

// Server holds the HTTP handlers over the application service.
type Server struct {
	Svc *service.Service
	Log *slog.Logger
}

// New builds a Server.
func New(svc *service.Service, log *slog.Logger) *Server {
	return &Server{Svc: svc, Log: log}
}

// Handler returns the routed handler with logging and CORS middleware
// applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+apiPrefix+"/health", s.handleHealth)
	mux.HandleFunc("POST "+apiPrefix+"/fetch_store", s.handleFetchStore)
	mux.HandleFunc("GET "+apiPrefix+"/today", s.handleToday)
	mux.HandleFunc("GET "+apiPrefix+"/paper/{id}", s.handlePaper)
	mux.HandleFunc("GET "+apiPrefix+"/history", s.handleHistory)
	mux.HandleFunc("POST "+apiPrefix+"/summarize", s.handleSummarize)
	return requestLogger(s.Log, allowCORS(mux))
}

// writeJSON encodes v with an HTTP status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError emits the {"detail": ...} failure shape.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// statusFor maps the error taxonomy to HTTP statuses: not-found
// conditions to 404, credential and content failures to 400, quota to
// 429, everything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, fetcher.ErrNoPapers), errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoPDF), errors.Is(err, pdftext.ErrExtraction):
		return http.StatusBadRequest
	case errors.Is(err, feed.ErrUnavailable):
		return http.StatusInternalServerError
	}

	var se *summary.Error
	if errors.As(err, &se) {
		switch se.Reason {
		case summary.ReasonInvalidCredential, summary.ReasonContentRejected:
			return http.StatusBadRequest
		case summary.ReasonQuotaExceeded:
			return http.StatusTooManyRequests
		}
	}
	return http.StatusInternalServerError
}
