// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetcher

import (
	"context"
	"errors"
	"testing"

	"github.com/yubraaj11/AIDaily/internal/feed"
	"github.com/yubraaj11/AIDaily/internal/rotation"
)

// stubSource returns canned entries and records the category it was
// asked for.
type stubSource struct {
	entries  []feed.Entry
	err      error
	category string
	limit    int
}

func (s *stubSource) Fetch(ctx context.Context, category string, limit int) ([]feed.Entry, error) {
	s.category = category
	s.limit = limit
	return s.entries, s.err
}

func TestChoose(t *testing.T) {
	entries := []feed.Entry{
		{ID: "2401.00001v1"},
		{ID: "2401.00002v1"},
		{ID: "2401.00003v1"},
	}

	// The chosen entry must always come from the candidate set.
	ids := map[string]bool{}
	for _, e := range entries {
		ids[e.ID] = true
	}
	for i := 0; i < 20; i++ {
		got, err := Choose(entries)
		if err != nil {
			t.Fatalf("Choose: %v", err)
		}
		if !ids[got.ID] {
			t.Fatalf("Choose returned %q, not in candidate set", got.ID)
		}
	}
}

func TestChooseSingle(t *testing.T) {
	got, err := Choose([]feed.Entry{{ID: "only"}})
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if got.ID != "only" {
		t.Errorf("Choose() = %q, want %q", got.ID, "only")
	}
}

func TestChooseEmpty(t *testing.T) {
	_, err := Choose(nil)
	if !errors.Is(err, ErrNoPapers) {
		t.Fatalf("Choose(nil) error = %v, want ErrNoPapers", err)
	}
}

func TestNormalizeSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Attention  Is\n   Not Enough", "Attention Is Not Enough"},
		{"  leading and trailing  ", "leading and trailing"},
		{"tabs\there", "tabs here"},
		{"already clean", "already clean"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeSpace(tt.in); got != tt.want {
			t.Errorf("normalizeSpace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSecurePDFURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://arxiv.org/pdf/2401.01234v1", "https://arxiv.org/pdf/2401.01234v1"},
		{"https://arxiv.org/pdf/2401.01234v1", "https://arxiv.org/pdf/2401.01234v1"},
		{"http://example.com/p.pdf?dl=1", "https://example.com/p.pdf?dl=1"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := securePDFURL(tt.in); got != tt.want {
			t.Errorf("securePDFURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFetchOne(t *testing.T) {
	src := &stubSource{entries: []feed.Entry{{
		ID:        "2401.01234v1",
		Title:     "Attention  Is\n Not Enough",
		Link:      "http://arxiv.org/abs/2401.01234v1",
		Authors:   []string{"Ada Lovelace"},
		Published: "2024-01-03T18:00:00Z",
		Summary:   "We  revisit\nthe attention mechanism.",
		Links: []feed.TypedLink{
			{Href: "http://arxiv.org/pdf/2401.01234v1", Rel: "related", Type: "application/pdf"},
		},
	}}}

	f := &Fetcher{
		Selector:   &rotation.Selector{Categories: []string{"cat:cs.AI", "cat:cs.LG"}, Cursor: &rotation.MemoryCursor{}},
		Source:     src,
		MaxResults: 5,
	}

	p, err := f.FetchOne(context.Background())
	if err != nil {
		t.Fatalf("FetchOne: %v", err)
	}

	if src.category != "cat:cs.AI" {
		t.Errorf("queried category %q, want %q", src.category, "cat:cs.AI")
	}
	if src.limit != 5 {
		t.Errorf("queried limit %d, want 5", src.limit)
	}
	if p.ID != "2401.01234v1" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Title != "Attention Is Not Enough" {
		t.Errorf("Title = %q, want whitespace-normalized", p.Title)
	}
	if p.Summary != "We revisit the attention mechanism." {
		t.Errorf("Summary = %q, want whitespace-normalized", p.Summary)
	}
	if p.PDFURL != "https://arxiv.org/pdf/2401.01234v1" {
		t.Errorf("PDFURL = %q, want https scheme", p.PDFURL)
	}

	// The next call advances the rotation.
	if _, err := f.FetchOne(context.Background()); err != nil {
		t.Fatalf("FetchOne: %v", err)
	}
	if src.category != "cat:cs.LG" {
		t.Errorf("second call queried %q, want %q", src.category, "cat:cs.LG")
	}
}

func TestFetchOneNoCandidates(t *testing.T) {
	f := &Fetcher{
		Selector: &rotation.Selector{Categories: []string{"cat:cs.AI"}, Cursor: &rotation.MemoryCursor{}},
		Source:   &stubSource{},
	}

	_, err := f.FetchOne(context.Background())
	if !errors.Is(err, ErrNoPapers) {
		t.Fatalf("FetchOne error = %v, want ErrNoPapers", err)
	}
}

func TestFetchOneSourceError(t *testing.T) {
	f := &Fetcher{
		Selector: &rotation.Selector{Categories: []string{"cat:cs.AI"}, Cursor: &rotation.MemoryCursor{}},
		Source:   &stubSource{err: feed.ErrUnavailable},
	}

	_, err := f.FetchOne(context.Background())
	if !errors.Is(err, feed.ErrUnavailable) {
		t.Fatalf("FetchOne error = %v, want ErrUnavailable", err)
	}
}
