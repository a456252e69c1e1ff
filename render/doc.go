// Package render writes extracted documents to their output formats.
//
// Markdown is the primary format: a volume title, one horizontal-rule
// separated section per discourse with its metadata lines, and body
// paragraphs separated by blank lines. JSON and JSON Lines exports are
// also provided for downstream tooling.
package render
