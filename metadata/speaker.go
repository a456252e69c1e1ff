package metadata

import (
	"regexp"
	"strings"
)

// Rule is one step of the speaker normalization pipeline. Rules are
// order-sensitive: each receives the output of the previous one.
type Rule struct {
	// Name identifies the rule in tests and documentation.
	Name string

	apply func(string) string
}

// Apply runs the rule against s.
func (r Rule) Apply(s string) string {
	return r.apply(s)
}

var (
	// OCR frequently detaches the first letter of a name, producing
	// "G EORGE A. S MITH". The detached letter may follow a space or a
	// mid-name period.
	splitInitialRx     = regexp.MustCompile(`(^|\s)([A-Z])\s+([A-Z]{2,})`)
	splitAfterPeriodRx = regexp.MustCompile(`(\.)(\s*)([A-Z])\s+([A-Z]{2,})`)
	aliasBYoungRx      = regexp.MustCompile(`\bB\.\s*YOUNG\b`)
	aliasHCKimballRx   = regexp.MustCompile(`H\.\s*C\.\s*KIMBALL`)
	aliasPPPrattRx     = regexp.MustCompile(`\bP\.\s*P\.\s*PRATT\b`)
)

// Rules returns the speaker normalization pipeline in application
// order. Each rule is independently testable via [Rule.Apply].
func Rules() []Rule {
	return []Rule{
		{
			Name: "repair split initials",
			apply: func(s string) string {
				s = splitInitialRx.ReplaceAllString(s, "${1}${2}${3}")
				return splitAfterPeriodRx.ReplaceAllString(s, "${1}${2}${3}${4}")
			},
		},
		{
			Name: "expand abbreviated names",
			apply: func(s string) string {
				s = aliasBYoungRx.ReplaceAllString(s, "BRIGHAM YOUNG")
				s = aliasHCKimballRx.ReplaceAllString(s, "HEBER C. KIMBALL")
				s = aliasPPPrattRx.ReplaceAllString(s, "PARLEY P. PRATT")
				if s == "PARLEY P. PRATT" {
					s = "ELDER " + s
				}
				return s
			},
		},
		{
			Name: "unify honorifics",
			apply: func(s string) string {
				s = strings.ReplaceAll(s, "PROFESSOR ", "ELDER ")
				s = strings.ReplaceAll(s, "MR. ", "ELDER ")
				s = strings.ReplaceAll(s, "HON. ", "ELDER ")
				if strings.Contains(s, "ESQ.") {
					s = strings.ReplaceAll(s, "ESQ.,", "")
					s = strings.ReplaceAll(s, "ESQ.", "")
					s = strings.TrimSpace(s)
					if !strings.HasPrefix(s, "ELDER") {
						s = "ELDER " + s
					}
				}
				return s
			},
		},
	}
}

// NormalizeSpeaker runs the full rewrite pipeline over a matched
// speaker string. Normalization is best-effort: names no rule
// recognizes pass through unchanged apart from whitespace trimming.
func NormalizeSpeaker(speaker string) string {
	for _, rule := range Rules() {
		speaker = rule.Apply(speaker)
	}
	return strings.TrimSpace(speaker)
}
