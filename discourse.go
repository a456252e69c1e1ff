// Package discourse provides a fluent API for converting noisily
// OCR-extracted volumes of the Journal of Discourses into discrete,
// labeled records.
//
// Basic usage:
//
//	doc, err := discourse.Open("JoD01.txt").Document()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Printf("found %d discourses\n", len(doc.Records))
//
// With options:
//
//	md, err := discourse.Open("JoD01.txt").
//	    Speaker("BRIGHAM YOUNG").
//	    WithoutNumbers().
//	    Markdown()
//
// The pipeline underneath is deterministic and purely in-memory: page
// cleaning, dehyphenation, boundary detection, metadata extraction, and
// paragraph reconstruction. The lower-level packages (clean, boundary,
// metadata, content) are available for advanced use.
package discourse

import "github.com/tsawler/discourse/model"

// Open prepares an Extractor for a source file. Plain text files hold
// form-feed separated pages, HTML files hold class="page" elements, and
// a directory is treated as page scans to be recognized through OCR.
//
// Example:
//
//	records, err := discourse.Open("JoD01.txt").Records()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromPages creates an Extractor over already-extracted pages. This is
// the entry point for callers that run their own page extraction.
//
// Example:
//
//	doc, err := discourse.FromPages(pages).VolumeTitle("VOLUME 3").Document()
func FromPages(pages []model.Page) *Extractor {
	return &Extractor{
		pages:     pages,
		havePages: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := discourse.Must(discourse.Open("JoD01.txt").Document())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
