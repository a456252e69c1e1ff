package content

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/discourse/classify"
)

// sentence-ending punctuation accepted for a soft paragraph break
const sentenceEnders = ".!?:;"

// "word- word" artifact left after line joining
var hyphenArtifactRx = regexp.MustCompile(`(\w+)-\s+(\w+)`)

// Config holds configuration for paragraph reconstruction.
type Config struct {
	// MinSoftBreakLines is the minimum number of accumulated lines
	// before a soft paragraph break may be inferred.
	// Default: 3
	MinSoftBreakLines int

	// MinEchoTokenLen is the minimum length of a title token for the
	// echo-stripping pass to match it inside an all-caps line.
	// Default: 4
	MinEchoTokenLen int
}

// DefaultConfig returns sensible defaults for paragraph reconstruction.
func DefaultConfig() Config {
	return Config{
		MinSoftBreakLines: 3,
		MinEchoTokenLen:   4,
	}
}

// Segmenter reconstructs body paragraphs from a record's line span.
type Segmenter struct {
	config Config
}

// New creates a segmenter with the default configuration.
func New() *Segmenter {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a segmenter with custom configuration.
func NewWithConfig(config Config) *Segmenter {
	return &Segmenter{config: config}
}

// Paragraphs strips title echoes from the span and reflows the
// remainder into ordered paragraphs.
func (s *Segmenter) Paragraphs(lines []string, title string) []string {
	return s.Reflow(s.StripTitleEchoes(lines, title))
}

// StripTitleEchoes drops leading all-caps lines that repeat the
// extracted title, either whole or through isolated title tokens.
// Lines carrying "REPORTED BY" or "DELIVERED" are kept verbatim.
// Stripping stops permanently at the first non-uppercase line; past
// that point even all-caps lines are legitimate emphasis and are
// preserved unmodified.
func (s *Segmenter) StripTitleEchoes(lines []string, title string) []string {
	if title == "" {
		return lines
	}

	echoes := []string{title, title + "."}
	var tokens []string
	for _, tok := range strings.Fields(title) {
		if len(tok) >= s.config.MinEchoTokenLen {
			tokens = append(tokens, tok)
		}
	}

	var kept []string
	started := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if started || !classify.AllCaps(trimmed) {
			started = true
			if trimmed == echoes[0] || trimmed == echoes[1] {
				continue
			}
			kept = append(kept, line)
			continue
		}

		if strings.Contains(trimmed, classify.ReporterPrefix) || strings.Contains(trimmed, "DELIVERED") {
			kept = append(kept, line)
			continue
		}
		if trimmed == echoes[0] || trimmed == echoes[1] || containsAny(trimmed, tokens) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// Reflow joins lines into paragraphs. A blank line forces a hard break.
// A soft break is inferred when the accumulator already holds
// MinSoftBreakLines lines, the previous line ends a sentence, and the
// new line opens with a capital letter or a quotation mark.
func (s *Segmenter) Reflow(lines []string) []string {
	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		paragraphs = append(paragraphs, joinParagraph(current))
		current = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if line == "" {
			flush()
			continue
		}

		if len(current) >= s.config.MinSoftBreakLines &&
			endsSentence(current[len(current)-1]) &&
			startsNew(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return paragraphs
}

// joinParagraph joins accumulated lines with single spaces and repairs
// hyphen artifacts left by line wrapping.
func joinParagraph(lines []string) string {
	text := strings.Join(lines, " ")
	return hyphenArtifactRx.ReplaceAllString(text, "$1$2")
}

func endsSentence(line string) bool {
	line = strings.TrimRight(line, " \t")
	if line == "" {
		return false
	}
	return strings.ContainsRune(sentenceEnders, rune(line[len(line)-1]))
}

func startsNew(line string) bool {
	if strings.HasPrefix(line, `"`) {
		return true
	}
	for _, r := range line {
		return unicode.IsUpper(r)
	}
	return false
}

func containsAny(line string, parts []string) bool {
	for _, p := range parts {
		if strings.Contains(line, p) {
			return true
		}
	}
	return false
}
