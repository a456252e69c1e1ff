package clean

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/discourse/classify"
	"github.com/tsawler/discourse/model"
)

// Config holds configuration for page cleaning.
type Config struct {
	// Classify supplies the corpus-specific furniture patterns.
	Classify classify.Config

	// Normalize applies NFC normalization to each line before
	// filtering. OCR output frequently carries decomposed accents
	// that would defeat exact string matching downstream.
	// Default: true
	Normalize bool
}

// DefaultConfig returns sensible defaults for the Journal of Discourses
// printings.
func DefaultConfig() Config {
	return Config{
		Classify:  classify.DefaultConfig(),
		Normalize: true,
	}
}

// Cleaner strips non-content lines from pages.
type Cleaner struct {
	config     Config
	classifier *classify.Classifier
}

// New creates a cleaner with the default configuration.
func New() *Cleaner {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a cleaner with custom configuration.
func NewWithConfig(config Config) *Cleaner {
	return &Cleaner{
		config:     config,
		classifier: classify.NewWithConfig(config.Classify),
	}
}

// CleanPage returns the surviving lines of one page, trimmed, in their
// original order. There is no cross-page state.
func (c *Cleaner) CleanPage(lines []string) []string {
	var cleaned []string
	for _, line := range lines {
		if c.config.Normalize {
			line = norm.NFC.String(line)
		}
		line = strings.TrimSpace(line)
		if c.classifier.PageFurniture(line) {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return cleaned
}

// CleanPages cleans every page independently and concatenates the
// survivors into the single global line stream, in page order.
func (c *Cleaner) CleanPages(pages []model.Page) []string {
	var all []string
	for _, page := range pages {
		all = append(all, c.CleanPage(page.Lines)...)
	}
	return all
}
