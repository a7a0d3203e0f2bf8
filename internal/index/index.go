// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists the identifier-to-title map used to decide
// whether a paper has already been stored.
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store loads and saves the dedup index. Load returns the full map or an
// error; a parse failure is a real failure, never an error marker inside
// the map. Save overwrites the persisted index wholesale.
type Store interface {
	Load() (map[string]string, error)
	Save(map[string]string) error
}

// FileStore keeps the index as a single JSON object on disk.
type FileStore struct {
	Path string
}

// Load reads the persisted index. A missing file yields an empty map;
// malformed content yields an error.
func (s *FileStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading index %s: %w", s.Path, err)
	}

	idx := map[string]string{}
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", s.Path, err)
	}
	return idx, nil
}

// Save overwrites the persisted index. The write goes through a temp
// file and rename so a crash never leaves a half-written index behind.
func (s *FileStore) Save(idx map[string]string) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".index-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp index file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing index: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp index file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp index file: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests and fakes.
type MemoryStore struct {
	M map[string]string
}

func (m *MemoryStore) Load() (map[string]string, error) {
	out := make(map[string]string, len(m.M))
	for k, v := range m.M {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryStore) Save(idx map[string]string) error {
	m.M = make(map[string]string, len(idx))
	for k, v := range idx {
		m.M[k] = v
	}
	return nil
}

// Exists reports whether id is already present in the persisted index.
func Exists(s Store, id string) (bool, error) {
	idx, err := s.Load()
	if err != nil {
		return false, err
	}
	_, ok := idx[id]
	return ok, nil
}
