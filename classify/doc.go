// Package classify performs per-line typographic classification for the
// discourse extraction pipeline.
//
// Every line in the cleaned stream is classified exactly once into an
// [Annotation]: a primary [Class] tag plus the secondary pattern facts
// (all-caps, speaker cue, location cue, date presence) that the boundary
// detector and the metadata extractor both consume. Keeping all corpus
// regexes in one place avoids divergent duplicate pattern logic between
// those two consumers.
//
// The patterns are tuned to the typographic conventions of the Journal
// of Discourses printings: ALL-CAPS headings, "REPORTED BY" reporter
// credits, and running headers of the shape "TITLE. 123".
package classify
