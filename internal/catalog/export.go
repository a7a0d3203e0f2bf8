// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// exportFile holds the YAML snapshot layout.
type exportFile struct {
	GeneratedAt string        `yaml:"generated_at"`
	Count       int           `yaml:"count"`
	Papers      []exportEntry `yaml:"papers"`
}

type exportEntry struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Authors    []string `yaml:"authors,omitempty"`
	StoredDate string   `yaml:"stored_date"`
	File       string   `yaml:"file"`
	Summarized bool     `yaml:"summarized"`
}

// ExportYAML writes a human-readable snapshot of the whole catalog to
// path, newest stored date first.
func (c *Catalog) ExportYAML(ctx context.Context, path string) error {
	records, err := c.Since(ctx, "")
	if err != nil {
		return err
	}

	out := exportFile{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Count:       len(records),
	}
	for _, rec := range records {
		out.Papers = append(out.Papers, exportEntry{
			ID:         rec.ID,
			Title:      rec.Title,
			Authors:    rec.Authors,
			StoredDate: rec.StoredDate,
			File:       rec.File,
			Summarized: rec.Summarized,
		})
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export %s: %w", path, err)
	}
	return nil
}
