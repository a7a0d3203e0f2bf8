// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rotation persists the category-rotation cursor and selects the
// next feed category in fixed round-robin order.
package rotation

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// CursorStore persists a single non-negative integer cursor between
// invocations. Read and Write are not atomic as a pair; callers that can
// run concurrently must serialize the read-modify-write themselves.
type CursorStore interface {
	Read() (int, error)
	Write(int) error
}

// FileCursor stores the cursor as one decimal integer in a text file.
type FileCursor struct {
	Path string

	// Log receives a warning when a malformed persisted value is reset.
	// May be nil.
	Log *slog.Logger
}

// Read returns the persisted cursor. A missing file defaults to 0. A
// non-numeric or negative value is reset to 0 with a warning rather than
// aborting the invocation; the cursor is a convenience, not data.
func (f *FileCursor) Read() (int, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading rotation file %s: %w", f.Path, err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		if f.Log != nil {
			f.Log.Warn("malformed rotation cursor, resetting to 0",
				"path", f.Path, "value", strings.TrimSpace(string(data)))
		}
		return 0, nil
	}
	return n, nil
}

// Write persists the cursor, overwriting any previous value.
func (f *FileCursor) Write(n int) error {
	if err := os.WriteFile(f.Path, []byte(strconv.Itoa(n)), 0o644); err != nil {
		return fmt.Errorf("writing rotation file %s: %w", f.Path, err)
	}
	return nil
}

// MemoryCursor is an in-memory CursorStore for tests and fakes.
type MemoryCursor struct {
	V int
}

func (m *MemoryCursor) Read() (int, error) { return m.V, nil }
func (m *MemoryCursor) Write(n int) error  { m.V = n; return nil }

// Selector walks a fixed ordered category list, one step per call,
// persisting its position through a CursorStore.
type Selector struct {
	Categories []string
	Cursor     CursorStore
}

// Next returns the category for this invocation and advances the
// persisted cursor modulo the category count. Over N consecutive calls
// with no interleaving it returns every category exactly once, in
// declared order starting from the persisted cursor. Out-of-range
// persisted values are folded by the modulo rather than rejected.
func (s *Selector) Next() (string, error) {
	n := len(s.Categories)
	if n == 0 {
		return "", errors.New("no categories configured")
	}

	idx, err := s.Cursor.Read()
	if err != nil {
		return "", err
	}

	category := s.Categories[idx%n]
	if err := s.Cursor.Write((idx + 1) % n); err != nil {
		return "", err
	}
	return category, nil
}
