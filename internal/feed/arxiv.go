// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed queries the arXiv API for recent papers in a category.
package feed

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ErrUnavailable marks transport-level failures reaching the feed. The
// caller surfaces these as a service failure, distinct from an empty
// result set.
var ErrUnavailable = errors.New("feed unavailable")

// TypedLink is one <link> element of a feed entry, carrying the declared
// content type used to locate the PDF.
type TypedLink struct {
	Href string
	Rel  string
	Type string
}

// Entry is one candidate record returned by the feed.
type Entry struct {
	// ID is the last path segment of the entry's <id> URL, version
	// suffix included (e.g. "2401.01234v1").
	ID        string
	Title     string
	Link      string
	Authors   []string
	Published string
	Summary   string
	DOI       string
	Links     []TypedLink
}

// PDFURL returns the href of the first link declaring a PDF content
// type, or "" when the entry advertises none.
func (e Entry) PDFURL() string {
	for _, l := range e.Links {
		if l.Type == "application/pdf" {
			return l.Href
		}
	}
	return ""
}

// Source returns candidate entries for a category query, most recently
// submitted first, bounded by limit.
type Source interface {
	Fetch(ctx context.Context, category string, limit int) ([]Entry, error)
}

// ArxivSource queries the arXiv Atom API.
type ArxivSource struct {
	Client    *http.Client
	UserAgent string
}

// Fetch queries one category, requesting at most limit entries sorted by
// submission date descending. Transport and HTTP failures wrap
// ErrUnavailable; an empty candidate set is returned as an empty slice,
// not an error.
func (s *ArxivSource) Fetch(ctx context.Context, category string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 5
	}

	q := url.Values{}
	q.Set("search_query", category)
	q.Set("start", "0")
	q.Set("max_results", strconv.Itoa(limit))
	q.Set("sortBy", "submittedDate")
	q.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivAPIBase+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: arXiv API returned HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	var f atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: parsing arXiv response: %v", ErrUnavailable, err)
	}

	entries := make([]Entry, 0, len(f.Entries))
	for _, ae := range f.Entries {
		e := Entry{
			ID:        entryID(ae.ID),
			Title:     ae.Title,
			Published: ae.Published,
			Summary:   ae.Summary,
			DOI:       strings.TrimSpace(ae.DOI),
		}
		for _, a := range ae.Authors {
			e.Authors = append(e.Authors, strings.TrimSpace(a.Name))
		}
		for _, l := range ae.Links {
			e.Links = append(e.Links, TypedLink{Href: l.Href, Rel: l.Rel, Type: l.Type})
			if l.Rel == "alternate" || (e.Link == "" && l.Type == "text/html") {
				e.Link = l.Href
			}
		}
		if e.Link == "" {
			e.Link = ae.ID
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// entryID keeps the full identifier, version suffix included
// (e.g. "http://arxiv.org/abs/2401.01234v1" -> "2401.01234v1").
func entryID(idURL string) string {
	if i := strings.LastIndex(idURL, "/"); i >= 0 {
		return idURL[i+1:]
	}
	return idURL
}

// arXiv Atom feed XML structures.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string       `xml:"id"`
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	DOI       string       `xml:"doi"`
	Authors   []atomAuthor `xml:"author"`
	Links     []atomLink   `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}
