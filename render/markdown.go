package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/discourse/model"
)

// MarkdownConfig holds configuration for markdown rendering.
type MarkdownConfig struct {
	// NumberRecords emits a "## Discourse N" heading for each record.
	// Default: true
	NumberRecords bool
}

// DefaultMarkdownConfig returns the default rendering configuration.
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		NumberRecords: true,
	}
}

// Markdown renders the document with the default configuration.
func Markdown(doc model.Document) string {
	return MarkdownWithConfig(doc, DefaultMarkdownConfig())
}

// MarkdownWithConfig renders the document to a markdown string.
func MarkdownWithConfig(doc model.Document, config MarkdownConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)

	for i, r := range doc.Records {
		b.WriteString("---\n\n")
		if config.NumberRecords {
			fmt.Fprintf(&b, "## Discourse %d\n\n", i+1)
		}

		if r.Title != "" {
			fmt.Fprintf(&b, "# %s\n\n", r.Title)
		}
		if r.Speaker != "" {
			fmt.Fprintf(&b, "**Speaker:** %s  \n", r.Speaker)
		}
		if r.Location != "" || r.Date != "" {
			b.WriteString("**Delivered:** ")
			b.WriteString(r.Location)
			if r.Location != "" && r.Date != "" {
				b.WriteString(", ")
			}
			b.WriteString(r.Date)
			b.WriteString("  \n")
		}
		if r.Reporter != "" {
			fmt.Fprintf(&b, "**Reported by:** %s  \n", r.Reporter)
		}

		fmt.Fprintf(&b, "\n%s\n\n", r.Content())
	}

	return b.String()
}

// WriteMarkdown renders the document to w.
func WriteMarkdown(w io.Writer, doc model.Document, config MarkdownConfig) error {
	_, err := io.WriteString(w, MarkdownWithConfig(doc, config))
	if err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}
