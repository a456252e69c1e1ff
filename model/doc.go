// Package model defines the data types shared across the discourse
// extraction pipeline.
//
// # Pipeline Data Flow
//
// Data flows strictly forward through the pipeline:
//
//	pages -> cleaned lines -> dehyphenated stream -> title blocks ->
//	(metadata, content) pairs -> records -> rendered output
//
// The types here are produced once by a single linear pass and are not
// mutated afterward. A [Page] is the unit handed over by a page source,
// a [TitleBlock] marks one verified record boundary in the global line
// stream, and a [Record] is one fully extracted discourse. A [Document]
// is the ordered sequence of records for one volume.
package model
