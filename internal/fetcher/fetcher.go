// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetcher selects the next category, queries the feed, and maps
// one randomly chosen candidate into a paper record.
package fetcher

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/url"
	"regexp"
	"strings"

	"github.com/yubraaj11/AIDaily/internal/feed"
	"github.com/yubraaj11/AIDaily/internal/rotation"
	"github.com/yubraaj11/AIDaily/pkg/types"
)

// ErrNoPapers indicates the feed returned zero candidates for the chosen
// category. Callers surface this as a not-found outcome, not a failure.
var ErrNoPapers = errors.New("no papers found")

var whitespaceRE = regexp.MustCompile(`\s+`)

// Choose picks one entry uniformly at random. The draw comes from
// crypto/rand so no client can predict or bias which paper is chosen.
func Choose(entries []feed.Entry) (feed.Entry, error) {
	if len(entries) == 0 {
		return feed.Entry{}, ErrNoPapers
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(entries))))
	if err != nil {
		return feed.Entry{}, fmt.Errorf("drawing random index: %w", err)
	}
	return entries[n.Int64()], nil
}

// normalizeSpace collapses whitespace runs to single spaces and trims
// the ends.
func normalizeSpace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// securePDFURL rewrites an insecure link scheme to https, preserving
// host, path, and query.
func securePDFURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.Scheme == "http" {
		u.Scheme = "https"
	}
	return u.String()
}

// Fetcher composes the category selector and the feed source.
type Fetcher struct {
	Selector   *rotation.Selector
	Source     feed.Source
	MaxResults int
	Log        *slog.Logger
}

// FetchOne advances the rotation, queries the feed for the chosen
// category, and returns one randomly selected candidate mapped to a
// paper record with whitespace-normalized text fields. The storage
// decision belongs to the caller.
func (f *Fetcher) FetchOne(ctx context.Context) (*types.Paper, error) {
	category, err := f.Selector.Next()
	if err != nil {
		return nil, err
	}
	if f.Log != nil {
		f.Log.Info("fetching papers", "category", category)
	}

	entries, err := f.Source.Fetch(ctx, category, f.MaxResults)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w for category %s", ErrNoPapers, category)
	}

	entry, err := Choose(entries)
	if err != nil {
		return nil, err
	}

	p := &types.Paper{
		ID:        entry.ID,
		Title:     normalizeSpace(entry.Title),
		URL:       entry.Link,
		Authors:   entry.Authors,
		Published: entry.Published,
		Summary:   normalizeSpace(entry.Summary),
		DOI:       entry.DOI,
		PDFURL:    securePDFURL(entry.PDFURL()),
	}
	if f.Log != nil {
		f.Log.Info("fetched paper", "id", p.ID, "title", p.Title)
	}
	return p, nil
}
