// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists paper records as dated JSON files and answers
// the read queries through the catalog.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/yubraaj11/AIDaily/internal/catalog"
	"github.com/yubraaj11/AIDaily/internal/index"
	"github.com/yubraaj11/AIDaily/pkg/types"
)

// ErrNotFound indicates no stored record matches the identifier.
var ErrNotFound = errors.New("paper not found")

const dateLayout = "2006-01-02"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// NormalizeID converts a paper identifier into a filesystem-safe token:
// characters outside [A-Za-z0-9._-] become "_" and the result is
// lower-cased.
func NormalizeID(id string) string {
	return strings.ToLower(unsafeChars.ReplaceAllString(id, "_"))
}

// FileName returns the record file name for id stored on date.
func FileName(date time.Time, id string) string {
	return date.UTC().Format(dateLayout) + "-" + NormalizeID(id) + ".json"
}

// Store writes record files into PapersDir, keeps the dedup index and
// the catalog in step, and serves reads. The file write happens before
// the index write, so an interrupted save can leave an orphan record
// file but never a dangling index entry.
type Store struct {
	PapersDir string
	Index     index.Store
	Catalog   *catalog.Catalog

	// Now is the clock used for record dating. Nil means time.Now.
	Now func() time.Time
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Exists consults the dedup index for id.
func (s *Store) Exists(id string) (bool, error) {
	return index.Exists(s.Index, id)
}

// CachedCount returns the number of index entries.
func (s *Store) CachedCount() (int, error) {
	idx, err := s.Index.Load()
	if err != nil {
		return 0, err
	}
	return len(idx), nil
}

// Save persists a new paper: record file, then catalog row, then index
// entry. It returns the record file name. Save does not check for
// duplicates; callers decide via Exists first.
func (s *Store) Save(ctx context.Context, p *types.Paper) (string, error) {
	idx, err := s.Index.Load()
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	name := FileName(now, p.ID)
	if err := s.writeRecord(name, p); err != nil {
		return "", err
	}

	rec := catalog.Record{
		ID:         p.ID,
		Title:      p.Title,
		Authors:    p.Authors,
		Published:  p.Published,
		StoredDate: now.Format(dateLayout),
		File:       name,
		PDFURL:     p.PDFURL,
		Summarized: p.Summarized(),
	}
	if err := s.Catalog.Put(ctx, rec); err != nil {
		return "", err
	}

	idx[p.ID] = p.Title
	if err := s.Index.Save(idx); err != nil {
		return "", err
	}
	return name, nil
}

// Get loads the record file registered in the catalog for id.
func (s *Store) Get(ctx context.Context, id string) (*types.Paper, error) {
	rec, err := s.Catalog.Get(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.readRecord(rec.File)
}

// Rewrite replaces a stored record in place, keeping its file name and
// catalog row; used when a summary is attached.
func (s *Store) Rewrite(ctx context.Context, p *types.Paper) error {
	rec, err := s.Catalog.Get(ctx, p.ID)
	if errors.Is(err, catalog.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := s.writeRecord(rec.File, p); err != nil {
		return err
	}
	if p.Summarized() && !rec.Summarized {
		if err := s.Catalog.SetSummarized(ctx, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// Today returns the current date and the records stored on it.
func (s *Store) Today(ctx context.Context) (string, []*types.Paper, error) {
	date := s.now().UTC().Format(dateLayout)
	recs, err := s.Catalog.ByDate(ctx, date)
	if err != nil {
		return "", nil, err
	}
	papers, err := s.readAll(recs)
	return date, papers, err
}

// DayGroup is one history bucket: every record stored on Date.
type DayGroup struct {
	Date   string         `json:"date"`
	Papers []*types.Paper `json:"papers"`
}

// History returns stored records grouped by stored date, newest date
// first, limited to the last days (0 means all time).
func (s *Store) History(ctx context.Context, days int) ([]DayGroup, error) {
	cutoff := ""
	if days > 0 {
		cutoff = s.now().UTC().AddDate(0, 0, -days).Format(dateLayout)
	}

	recs, err := s.Catalog.Since(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	var groups []DayGroup
	for _, rec := range recs {
		p, err := s.readRecord(rec.File)
		if err != nil {
			// A missing record file is an orphaned catalog row; skip it
			// rather than failing the whole listing.
			continue
		}
		if len(groups) == 0 || groups[len(groups)-1].Date != rec.StoredDate {
			groups = append(groups, DayGroup{Date: rec.StoredDate})
		}
		g := &groups[len(groups)-1]
		g.Papers = append(g.Papers, p)
	}
	return groups, nil
}

func (s *Store) writeRecord(name string, p *types.Paper) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling record %s: %w", p.ID, err)
	}
	path := filepath.Join(s.PapersDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing record %s: %w", path, err)
	}
	return nil
}

func (s *Store) readRecord(name string) (*types.Paper, error) {
	data, err := os.ReadFile(filepath.Join(s.PapersDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading record %s: %w", name, err)
	}
	var p types.Paper
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing record %s: %w", name, err)
	}
	return &p, nil
}

func (s *Store) readAll(recs []catalog.Record) ([]*types.Paper, error) {
	papers := make([]*types.Paper, 0, len(recs))
	for _, rec := range recs {
		p, err := s.readRecord(rec.File)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, nil
}
