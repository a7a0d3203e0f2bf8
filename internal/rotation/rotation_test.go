// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rotation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSelectorRoundRobin(t *testing.T) {
	categories := []string{"cat:cs.AI", "cat:cs.LG", "cat:cs.CL", "cat:cs.CV"}
	s := &Selector{Categories: categories, Cursor: &MemoryCursor{}}

	// Two full cycles visit every category in declared order.
	for cycle := 0; cycle < 2; cycle++ {
		for i, want := range categories {
			got, err := s.Next()
			if err != nil {
				t.Fatalf("Next (cycle %d, step %d): %v", cycle, i, err)
			}
			if got != want {
				t.Errorf("cycle %d step %d: got %q, want %q", cycle, i, got, want)
			}
		}
	}
}

func TestSelectorResumesFromCursor(t *testing.T) {
	categories := []string{"A", "B", "C"}
	cursor := &MemoryCursor{V: 1}
	s := &Selector{Categories: categories, Cursor: cursor}

	got, err := s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got != "B" {
		t.Errorf("Next() = %q, want %q", got, "B")
	}
	if cursor.V != 2 {
		t.Errorf("cursor after Next = %d, want 2", cursor.V)
	}

	got, err = s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got != "C" {
		t.Errorf("Next() = %q, want %q", got, "C")
	}
	if cursor.V != 0 {
		t.Errorf("cursor after wrap = %d, want 0", cursor.V)
	}
}

func TestSelectorFoldsOutOfRangeCursor(t *testing.T) {
	categories := []string{"A", "B", "C"}
	s := &Selector{Categories: categories, Cursor: &MemoryCursor{V: 7}}

	got, err := s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got != "B" { // 7 % 3 == 1
		t.Errorf("Next() = %q, want %q", got, "B")
	}
}

func TestSelectorNoCategories(t *testing.T) {
	s := &Selector{Cursor: &MemoryCursor{}}
	if _, err := s.Next(); err == nil {
		t.Fatal("expected error for empty category list")
	}
}

func TestFileCursorRead(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
		want    int
	}{
		{name: "missing file", missing: true, want: 0},
		{name: "plain value", content: "3", want: 3},
		{name: "trailing newline", content: "2\n", want: 2},
		{name: "malformed", content: "banana", want: 0},
		{name: "negative", content: "-1", want: 0},
		{name: "empty", content: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rotation.txt")
			if !tt.missing {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			c := &FileCursor{Path: path}
			got, err := c.Read()
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if got != tt.want {
				t.Errorf("Read() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFileCursorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotation.txt")
	c := &FileCursor{Path: path}

	if err := c.Write(2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := c.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != 2 {
		t.Errorf("Read() = %d, want 2", got)
	}

	// Overwrite replaces the previous value.
	if err := c.Write(0); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err = c.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != 0 {
		t.Errorf("Read() after overwrite = %d, want 0", got)
	}
}

func TestSelectorWithFileCursor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotation.txt")
	categories := []string{"cat:cs.AI", "cat:cs.LG"}

	// Each Next call builds a fresh selector, as separate process
	// invocations would.
	want := []string{"cat:cs.AI", "cat:cs.LG", "cat:cs.AI"}
	for i, w := range want {
		s := &Selector{Categories: categories, Cursor: &FileCursor{Path: path}}
		got, err := s.Next()
		if err != nil {
			t.Fatalf("Next (step %d): %v", i, err)
		}
		if got != w {
			t.Errorf("step %d: got %q, want %q", i, got, w)
		}
	}
}
