// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper holds the metadata record persisted for one fetched paper.
// The JSON field names are the record-file contract; the frontend reads
// these files as-is.
type Paper struct {
	// ID is the feed identifier including any version suffix
	// (e.g. "2401.01234v1"). It is the natural key for deduplication.
	ID string `json:"id"`

	// Title is the paper title with whitespace runs collapsed.
	Title string `json:"title"`

	// URL is the canonical abstract page for the paper.
	URL string `json:"url"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors"`

	// Published is the publication timestamp as reported by the feed
	// (ISO-8601-like string, stored verbatim).
	Published string `json:"published"`

	// Summary is the feed-provided abstract, whitespace normalized.
	Summary string `json:"summary,omitempty"`

	// DOI is the digital object identifier, when the feed reports one.
	DOI string `json:"doi,omitempty"`

	// PDFURL is the full-text PDF link, coerced to https.
	PDFURL string `json:"pdf_url,omitempty"`

	// SummarizedText is the generated structured summary. Empty until a
	// summarization run rewrites the record in place.
	SummarizedText string `json:"summarized_text,omitempty"`
}

// Summarized reports whether a generated summary has been attached.
func (p *Paper) Summarized() bool {
	return p.SummarizedText != ""
}
