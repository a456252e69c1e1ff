// Package metadata extracts structured fields from a verified title
// block: title, speaker, location, date, and reporter.
//
// Extraction is best-effort and never fails: a line that matches no
// field pattern simply contributes nothing. The first "REPORTED BY"
// line supplies the reporter and stops the scan. Speaker names pass
// through an ordered rewrite pipeline ([Rules]) that repairs OCR
// spacing artifacts, applies a fixed alias table, and unifies
// honorifics; names the pipeline does not recognize pass through
// unchanged.
package metadata
