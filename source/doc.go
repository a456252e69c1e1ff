// Package source supplies pages to the extraction pipeline.
//
// The core treats a page as an opaque ordered sequence of lines with no
// guaranteed cleanliness; this package provides three conforming
// producers: pre-extracted plain text with form-feed page separators,
// HTML corpus pages, and directories of page-scan images recognized
// through an OCR engine.
package source
