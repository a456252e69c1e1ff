package clean

import (
	"regexp"
	"strings"
	"unicode"
)

// trailing word run followed by a hyphen and optional spaces
var trailingHyphenRx = regexp.MustCompile(`(\w+)-\s*$`)

// Dehyphenate rejoins words split by a trailing hyphen across a line
// boundary. A merge happens only when the next line starts with a
// lowercase letter, which distinguishes a printer's word break from a
// genuine hyphenated compound at end of line. Each merge consumes both
// lines; the scan does not chain more than one join per line pair.
func Dehyphenate(lines []string) []string {
	var fixed []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if i+1 < len(lines) {
			if loc := trailingHyphenRx.FindStringSubmatchIndex(line); loc != nil {
				next := strings.TrimSpace(lines[i+1])
				if startsLower(next) {
					fixed = append(fixed, line[:loc[0]]+line[loc[2]:loc[3]]+next)
					i++
					continue
				}
			}
		}

		fixed = append(fixed, line)
	}

	return fixed
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}
