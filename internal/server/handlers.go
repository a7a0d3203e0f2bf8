// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yubraaj11/AIDaily/pkg/types"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	cached, err := s.Svc.Cached()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "cached": cached})
}

func (s *Server) handleFetchStore(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.Svc.FetchAndStore(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	date, papers, err := s.Svc.Today(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if papers == nil {
		papers = []*types.Paper{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":   date,
		"count":  len(papers),
		"papers": papers,
	})
}

func (s *Server) handlePaper(w http.ResponseWriter, r *http.Request) {
	p, err := s.Svc.Paper(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"paper": p})
}

// historyEntry is the trimmed per-paper shape returned by the history
// listing.
type historyEntry struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Published string   `json:"published"`
	PDFURL    string   `json:"pdf_url"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	days, ok := parseDateRange(r.URL.Query().Get("date_range"))
	if !ok {
		writeError(w, http.StatusBadRequest, "date_range must be 7, 30, or all")
		return
	}

	groups, err := s.Svc.History(r.Context(), days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	history := make(map[string][]historyEntry, len(groups))
	for _, g := range groups {
		entries := make([]historyEntry, 0, len(g.Papers))
		for _, p := range g.Papers {
			entries = append(entries, historyEntry{
				ID:        p.ID,
				Title:     p.Title,
				Authors:   p.Authors,
				Published: p.Published,
				PDFURL:    p.PDFURL,
			})
		}
		history[g.Date] = entries
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}

// parseDateRange accepts "7", "30", or "all" (default). Returns the
// window in days, 0 meaning all time.
func parseDateRange(v string) (int, bool) {
	switch v {
	case "", "all":
		return 0, true
	case "7", "30":
		n, _ := strconv.Atoi(v)
		return n, true
	default:
		return 0, false
	}
}

// summarizeRequest is the POST /summarize payload.
type summarizeRequest struct {
	PaperID string `json:"paper_id"`
	APIKey  string `json:"api_key"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.PaperID == "" {
		writeError(w, http.StatusBadRequest, "paper_id is required")
		return
	}

	p, err := s.Svc.Summarize(r.Context(), req.PaperID, req.APIKey)
	if err != nil {
		if s.Log != nil {
			s.Log.Warn("summarization failed", "paper", req.PaperID, "error", err)
		}
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"paper": p})
}
