// Package volume provides naming conventions and derived views for
// Journal of Discourses volumes: volume-number detection in source
// filenames, output-file and title derivation, and filtering of
// already-extracted record sets.
package volume

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultTitle is the volume title used when no volume number can be
// derived from the source filename.
const DefaultTitle = "JOURNAL OF DISCOURSES"

var volumeRefRx = regexp.MustCompile(`JoD(\d+)`)

// ParseRef extracts the volume number embedded in a source filename,
// e.g. "JoD14.pdf" yields "14". ok is false when no reference exists.
func ParseRef(filename string) (num string, ok bool) {
	m := volumeRefRx.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Title derives the volume title from a source filename.
func Title(filename string) string {
	if num, ok := ParseRef(filename); ok {
		return fmt.Sprintf("%s - VOLUME %s", DefaultTitle, num)
	}
	return DefaultTitle
}

// OutputName derives the markdown output filename from a source
// filename: "JoD3.pdf" becomes "JoD3_clean.md"; anything without a
// volume reference keeps its base name with a "_clean.md" suffix.
func OutputName(filename string) string {
	if num, ok := ParseRef(filename); ok {
		return fmt.Sprintf("JoD%s_clean.md", num)
	}
	base := filename
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base + "_clean.md"
}
