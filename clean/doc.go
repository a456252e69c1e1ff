// Package clean prepares raw page text for structural analysis.
//
// Cleaning happens in two stages. [Cleaner.CleanPage] works on one page
// at a time with no cross-page state: it normalizes the text to NFC,
// trims each line, and drops page furniture (blank lines, bare page
// numbers, running headers and footers). [Dehyphenate] then works once
// over the full cross-page line stream, rejoining words that the
// printer split with a trailing hyphen at a line break.
package clean
