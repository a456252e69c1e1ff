// Package boundary locates record boundaries in the cleaned line
// stream using only typographic cues.
//
// A candidate heading is a run of all-caps lines. Because emphasis and
// quoted scripture are also printed in capitals, a candidate only
// becomes a boundary after independent corroboration: a "REPORTED BY"
// credit, or the legal form "BEFORE THE HON. ... JUDGE", within a short
// lookahead window. Unverified candidates leave no trace.
//
// The detector is a pure function of its input: identical streams yield
// identical boundaries, emitted non-overlapping and strictly increasing.
package boundary
