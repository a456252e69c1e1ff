package model

import "strings"

// Page holds the raw extracted text of a single source page.
// The core treats the lines as an opaque ordered sequence with no
// guaranteed cleanliness; cleaning happens downstream.
type Page struct {
	// Number is the 1-based page number in the source volume.
	Number int

	// Lines is the page text split into lines, in page order.
	Lines []string
}

// TitleBlock marks one verified record boundary in the global cleaned
// line stream. Start and TitleEnd are indices into that stream; the
// record's body is the span [TitleEnd, next block's Start).
//
// Blocks emitted by the boundary detector are non-overlapping and
// strictly increasing in Start.
type TitleBlock struct {
	// Start is the index of the first heading line.
	Start int

	// TitleEnd is the index one past the last heading line examined.
	TitleEnd int

	// TitleLines are the accumulated all-caps heading lines, in order.
	TitleLines []string
}

// Record is one extracted discourse: structured metadata plus the
// reflowed body paragraphs in original reading order.
type Record struct {
	// Title is the discourse title assembled from heading fragments.
	Title string `json:"title"`

	// Speaker is the canonicalized speaker name (best-effort; unmapped
	// names pass through unchanged).
	Speaker string `json:"speaker"`

	// Location is the place the discourse was delivered, if stated.
	Location string `json:"location"`

	// Date is the delivery date as printed, e.g. "JANUARY 1ST, 1860".
	Date string `json:"date"`

	// Reporter is the name following "REPORTED BY" in the heading.
	Reporter string `json:"reporter"`

	// Paragraphs is the body text, one reflowed string per paragraph.
	Paragraphs []string `json:"paragraphs"`
}

// Content returns the record body as a single string with paragraphs
// separated by blank lines.
func (r Record) Content() string {
	return strings.Join(r.Paragraphs, "\n\n")
}

// Document is the ordered sequence of records extracted from one volume.
type Document struct {
	// Title is the volume title, e.g. "JOURNAL OF DISCOURSES - VOLUME 3".
	Title string `json:"title"`

	// Records are the extracted discourses in corpus order.
	Records []Record `json:"records"`
}

// Speakers returns the distinct speaker names in first-seen order.
func (d Document) Speakers() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range d.Records {
		if r.Speaker == "" || seen[r.Speaker] {
			continue
		}
		seen[r.Speaker] = true
		names = append(names, r.Speaker)
	}
	return names
}
