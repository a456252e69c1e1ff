package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// Class is the primary classification tag assigned to a line.
type Class int

const (
	// Blank is a line that is empty after trimming.
	Blank Class = iota
	// PageNumber is a bare page number.
	PageNumber
	// RunningHeader is repeated page decoration (title and/or page number).
	RunningHeader
	// ReporterCue is a line beginning with "REPORTED BY".
	ReporterCue
	// SpeakerCue is a line matching a speaker-indicator pattern.
	SpeakerCue
	// LocationCue is a line matching a location-indicator pattern.
	LocationCue
	// AllCapsCandidate is an all-caps line that may belong to a heading.
	AllCapsCandidate
	// Body is ordinary content text.
	Body
)

// String returns a human-readable representation of the class.
func (c Class) String() string {
	switch c {
	case Blank:
		return "blank"
	case PageNumber:
		return "page_number"
	case RunningHeader:
		return "running_header"
	case ReporterCue:
		return "reporter_cue"
	case SpeakerCue:
		return "speaker_cue"
	case LocationCue:
		return "location_cue"
	case AllCapsCandidate:
		return "all_caps"
	case Body:
		return "body"
	default:
		return "unknown"
	}
}

// Annotation holds everything the pipeline needs to know about one line,
// computed in a single pass. The secondary fields are not mutually
// exclusive with the Class tag: a speaker-cue line is usually also
// all-caps, and a heading line may carry the date.
type Annotation struct {
	// Class is the primary tag.
	Class Class

	// AllCaps reports whether the line has at least one cased letter
	// and no lowercase letter.
	AllCaps bool

	// SpeakerCue reports a speaker-indicator pattern match.
	SpeakerCue bool

	// LocationCue reports a location-indicator pattern match.
	LocationCue bool

	// HasDate reports a month-day-year date pattern match.
	HasDate bool

	// HeaderTail reports the running-header tail shape ". NNN" at the
	// end of the line (2-3 digit page number after a period).
	HeaderTail bool

	// Amen reports that the line is exactly "AMEN" or "AMEN.".
	Amen bool
}

// ReporterPrefix introduces the reporter credit that verifies a heading.
const ReporterPrefix = "REPORTED BY"

var (
	pageNumberRx = regexp.MustCompile(`^\d+$`)
	headerTailRx = regexp.MustCompile(`\.\s+\d{2,3}$`)
	dateRx       = regexp.MustCompile(`[A-Z]+\s+\d{1,2}(?:TH|ST|ND|RD)?,\s+\d{4}`)

	speakerRxs = []*regexp.Regexp{
		regexp.MustCompile(`\bBY\s+(?:PRESIDENT|ELDER|HON\.|ESQ\.|MR\.|PROFESSOR)`),
		regexp.MustCompile(`\bPRESIDENT\s+[A-Z]`),
		regexp.MustCompile(`\bELDER\s+[A-Z]`),
		regexp.MustCompile(`\bHON\.\s+[A-Z]`),
		regexp.MustCompile(`\bESQ\.\s*,`),
		regexp.MustCompile(`\bDELIVERED\s+BY`),
		regexp.MustCompile(`\bBEFORE\s+THE\s+HON\.`),
	}

	locationRxs = []*regexp.Regexp{
		regexp.MustCompile(`\bDELIVERED\s+(?:IN|AT)`),
		regexp.MustCompile(`\bGREAT\s+SALT\s+LAKE`),
		regexp.MustCompile(`\bTABERNACLE`),
	}
)

// Config holds corpus-specific classification settings.
type Config struct {
	// CorpusHeader is the running-header title printed across the
	// volume, matched exactly and in the "NNN TITLE" footer shape.
	// Default: "JOURNAL OF DISCOURSES."
	CorpusHeader string
}

// DefaultConfig returns the configuration for the Journal of Discourses
// printings.
func DefaultConfig() Config {
	return Config{
		CorpusHeader: "JOURNAL OF DISCOURSES.",
	}
}

// Classifier classifies lines against one corpus convention.
type Classifier struct {
	config   Config
	footerRx *regexp.Regexp
	headerRx *regexp.Regexp
}

// New creates a classifier with the default configuration.
func New() *Classifier {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a classifier with custom configuration.
func NewWithConfig(config Config) *Classifier {
	return &Classifier{
		config:   config,
		footerRx: regexp.MustCompile(`^\d+\s+` + regexp.QuoteMeta(config.CorpusHeader) + `$`),
		headerRx: regexp.MustCompile(`^[A-Z\s\-',]+\.\s+\d+\s*$`),
	}
}

// Classify computes the annotation for a single line. The line is
// trimmed before matching; positions in the stream are unaffected.
func (c *Classifier) Classify(line string) Annotation {
	line = strings.TrimSpace(line)

	ann := Annotation{
		AllCaps:    AllCaps(line),
		HasDate:    dateRx.MatchString(line),
		HeaderTail: headerTailRx.MatchString(line),
		Amen:       line == "AMEN" || line == "AMEN.",
	}
	for _, rx := range speakerRxs {
		if rx.MatchString(line) {
			ann.SpeakerCue = true
			break
		}
	}
	for _, rx := range locationRxs {
		if rx.MatchString(line) {
			ann.LocationCue = true
			break
		}
	}

	switch {
	case line == "":
		ann.Class = Blank
	case pageNumberRx.MatchString(line):
		ann.Class = PageNumber
	case line == c.config.CorpusHeader,
		c.footerRx.MatchString(line),
		c.headerRx.MatchString(line):
		ann.Class = RunningHeader
	case strings.HasPrefix(line, ReporterPrefix):
		ann.Class = ReporterCue
	case ann.SpeakerCue:
		ann.Class = SpeakerCue
	case ann.LocationCue:
		ann.Class = LocationCue
	case ann.AllCaps:
		ann.Class = AllCapsCandidate
	default:
		ann.Class = Body
	}

	return ann
}

// Annotate classifies every line of the stream in order.
func (c *Classifier) Annotate(lines []string) []Annotation {
	anns := make([]Annotation, len(lines))
	for i, line := range lines {
		anns[i] = c.Classify(line)
	}
	return anns
}

// PageFurniture reports whether a line is page decoration that the
// cleaner removes: blank, a bare page number, the corpus running header
// in any of its printed shapes, or a generic title-and-page-number line.
func (c *Classifier) PageFurniture(line string) bool {
	switch c.Classify(line).Class {
	case Blank, PageNumber, RunningHeader:
		return true
	}
	return false
}

// AllCaps reports whether s contains at least one cased letter and no
// lowercase letter, matching the heading convention of the corpus.
func AllCaps(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// FindDate returns the first date match in s, or "" when none exists.
func FindDate(s string) string {
	return dateRx.FindString(s)
}

// StripDate removes the first date match from s and returns the
// remainder together with the matched date.
func StripDate(s string) (rest, date string) {
	loc := dateRx.FindStringIndex(s)
	if loc == nil {
		return s, ""
	}
	return s[:loc[0]] + s[loc[1]:], s[loc[0]:loc[1]]
}

// IsVerification reports whether a line corroborates a candidate
// heading: a "REPORTED BY" credit anywhere in the line, or the legal
// form "BEFORE THE HON." together with "JUDGE".
func IsVerification(line string) bool {
	if strings.Contains(line, ReporterPrefix) {
		return true
	}
	return strings.Contains(line, "BEFORE THE HON.") && strings.Contains(line, "JUDGE")
}
