package metadata

import (
	"regexp"
	"strings"

	"github.com/tsawler/discourse/classify"
	"github.com/tsawler/discourse/model"
	"github.com/tsawler/discourse/scan"
)

// Fields holds the structured metadata extracted from one title block.
type Fields struct {
	Title    string
	Speaker  string
	Location string
	Date     string
	Reporter string
}

// Config holds configuration for metadata extraction.
type Config struct {
	// Lookahead is how many lines past the title block's end are still
	// scanned for metadata. The reporter credit in particular often
	// trails the heading by a few lines.
	// Default: 5
	Lookahead int

	// Classify supplies the corpus-specific line patterns.
	Classify classify.Config
}

// DefaultConfig returns sensible defaults for metadata extraction.
func DefaultConfig() Config {
	return Config{
		Lookahead: 5,
		Classify:  classify.DefaultConfig(),
	}
}

// Extractor pulls structured fields out of title blocks.
type Extractor struct {
	config Config
}

// New creates an extractor with the default configuration.
func New() *Extractor {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an extractor with custom configuration.
func NewWithConfig(config Config) *Extractor {
	return &Extractor{config: config}
}

// Extract classifies each non-blank line of the block span (plus
// lookahead) in order and assembles the metadata fields. Scanning
// short-circuits at the first "REPORTED BY" line.
func (e *Extractor) Extract(cur *scan.Cursor, block model.TitleBlock) Fields {
	var f Fields
	var titleParts, speakerParts, locationParts []string

	end := block.TitleEnd + e.config.Lookahead
	if end > cur.Len() {
		end = cur.Len()
	}

	for i := block.Start; i < end; i++ {
		line := strings.TrimSpace(cur.LineAt(i))
		if line == "" {
			continue
		}
		ann := cur.AnnAt(i)

		if strings.HasPrefix(line, classify.ReporterPrefix) {
			f.Reporter = strings.TrimRight(strings.TrimSpace(strings.TrimPrefix(line, classify.ReporterPrefix)), ".")
			break
		}

		if f.Date == "" {
			if date := classify.FindDate(line); date != "" {
				f.Date = date
			}
		}

		switch {
		case ann.SpeakerCue:
			speakerParts = append(speakerParts, line)
		case ann.LocationCue:
			locationParts = append(locationParts, line)
		case f.Date == "" && ann.AllCaps &&
			!strings.Contains(line, "BEFORE") &&
			!ann.HeaderTail &&
			!strings.Contains(line, "AMEN"):
			titleParts = append(titleParts, strings.TrimRight(line, "."))
		}
	}

	if name := extractSpeakerName(strings.Join(speakerParts, " ")); name != "" {
		f.Speaker = NormalizeSpeaker(name)
	}

	// The speaker lines frequently carry the place and date too, so
	// both buffers feed location extraction.
	combined := strings.Join(append(append([]string{}, locationParts...), speakerParts...), " ")
	location, date := extractLocationAndDate(combined)
	if location != "" {
		f.Location = location
	}
	if date != "" && f.Date == "" {
		f.Date = date
	}

	if len(titleParts) > 0 {
		f.Title = strings.Join(titleParts, " ")
	}

	return f
}

// Speaker capture patterns, tried in order; first match wins.
var speakerNameRxs = []*regexp.Regexp{
	regexp.MustCompile(`BY\s+((?:PRESIDENT|ELDER|HON\.|ESQ\.|MR\.|PROFESSOR)\s+[A-Z\s\.]+?)(?:,|\s+DELIVERED|\s+BEFORE|\s+ON)`),
	regexp.MustCompile(`((?:PRESIDENT|ELDER|HON\.|ESQ\.)\s+[A-Z\s\.]+?)(?:,|\s+DELIVERED|\s+BEFORE)`),
	regexp.MustCompile(`BY\s+([A-Z\s\.]+?)(?:,|\s+DELIVERED|\s+BEFORE)`),
}

// extractSpeakerName captures the raw speaker name from the joined
// speaker-cue text. Returns "" when no pattern matches.
func extractSpeakerName(text string) string {
	for _, rx := range speakerNameRxs {
		if m := rx.FindStringSubmatch(text); m != nil {
			return strings.TrimRight(strings.TrimSpace(m[1]), ",.")
		}
	}
	return ""
}
