package volume

import (
	"regexp"
	"strings"

	"github.com/tsawler/discourse/model"
)

// FilterBySpeaker returns a derived document holding only the records
// whose speaker contains name, case-insensitively. The match is
// deliberately loose so "BRIGHAM YOUNG" collects both "PRESIDENT
// BRIGHAM YOUNG" and the bare form. The source document is not
// modified.
func FilterBySpeaker(doc model.Document, name string) model.Document {
	needle := strings.ToUpper(strings.TrimSpace(name))
	out := model.Document{Title: doc.Title}
	if needle == "" {
		return out
	}
	for _, r := range doc.Records {
		if strings.Contains(strings.ToUpper(r.Speaker), needle) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

var discourseNumberRx = regexp.MustCompile(`(?m)^## Discourse \d+\n\n`)

// StripNumbers removes "## Discourse N" headings from already-rendered
// markdown, for outputs where per-volume numbering is meaningless
// (e.g. a cross-volume speaker compilation).
func StripNumbers(markdown string) string {
	return discourseNumberRx.ReplaceAllString(markdown, "")
}
