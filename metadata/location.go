package metadata

import (
	"regexp"
	"strings"

	"github.com/tsawler/discourse/classify"
)

var (
	locationKeywordRx = regexp.MustCompile(`(?:DELIVERED|AT|IN|BEFORE)\s+(?:THE\s+)?`)
	locationCharsRx   = regexp.MustCompile(`^[A-Z\s,\.]+`)
	dateStartRx       = regexp.MustCompile(`,\s*[A-Z]+\s+\d`)
	commaDotRx        = regexp.MustCompile(`\s*,\s*\.`)
	doubleCommaRx     = regexp.MustCompile(`,\s*,`)
	spaceRunRx        = regexp.MustCompile(`\s+`)
)

// extractLocationAndDate pulls the delivery place and date out of the
// combined location and speaker text. The date pattern is matched and
// removed first, then the location is the capitalized text following
// the first DELIVERED/AT/IN/BEFORE keyword, cut at the next date-like
// fragment, at "REPORTED", or at the end of the text.
func extractLocationAndDate(text string) (location, date string) {
	text, date = classify.StripDate(text)

	for _, kw := range locationKeywordRx.FindAllStringIndex(text, -1) {
		rest := text[kw[1]:]

		run := locationCharsRx.FindString(rest)
		if run == "" {
			continue
		}

		end := -1
		if run == rest {
			// The capitalized run extends to the end of the text.
			end = len(run)
		}
		if idx := strings.Index(rest, "REPORTED"); idx > 0 && idx <= len(run) && (end < 0 || idx < end) {
			end = idx
		}
		if loc := dateStartRx.FindStringIndex(rest); loc != nil && loc[0] > 0 && loc[0] <= len(run) && (end < 0 || loc[0] < end) {
			end = loc[0]
		}
		if end <= 0 {
			continue
		}

		location = cleanLocation(rest[:end])
		if location != "" {
			return location, date
		}
	}

	return "", date
}

// cleanLocation collapses the punctuation artifacts that line joining
// leaves behind and trims surrounding noise.
func cleanLocation(s string) string {
	s = commaDotRx.ReplaceAllString(s, "")
	s = doubleCommaRx.ReplaceAllString(s, ",")
	s = spaceRunRx.ReplaceAllString(s, " ")
	return strings.Trim(s, ",. ")
}
