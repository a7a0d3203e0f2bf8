// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSummarized(t *testing.T) {
	p := &Paper{ID: "2401.01234v1"}
	if p.Summarized() {
		t.Error("Summarized() = true for empty text")
	}
	p.SummarizedText = "1. Introduction"
	if !p.Summarized() {
		t.Error("Summarized() = false after text attached")
	}
}

func TestPaperRecordShape(t *testing.T) {
	// The record files are read by the frontend as-is; optional fields
	// must disappear when empty.
	data, err := json.Marshal(&Paper{ID: "x", Title: "t", Authors: []string{"a"}})
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, absent := range []string{"summarized_text", "pdf_url", "doi", "summary"} {
		if strings.Contains(out, absent) {
			t.Errorf("empty field %q serialized: %s", absent, out)
		}
	}
}
