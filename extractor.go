package discourse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/discourse/boundary"
	"github.com/tsawler/discourse/classify"
	"github.com/tsawler/discourse/clean"
	"github.com/tsawler/discourse/content"
	"github.com/tsawler/discourse/metadata"
	"github.com/tsawler/discourse/model"
	"github.com/tsawler/discourse/ocr"
	"github.com/tsawler/discourse/render"
	"github.com/tsawler/discourse/scan"
	"github.com/tsawler/discourse/source"
	"github.com/tsawler/discourse/volume"
)

// Extractor provides a fluent interface for extracting discourse
// records from a volume. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source
	filename  string
	pages     []model.Page
	havePages bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		pages:     e.pages,
		havePages: e.havePages,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// VolumeTitle overrides the volume title derived from the source
// filename.
func (e *Extractor) VolumeTitle(title string) *Extractor {
	newExt := e.clone()
	newExt.options.volumeTitle = title
	return newExt
}

// Speaker restricts the output to records whose speaker contains name,
// case-insensitively.
func (e *Extractor) Speaker(name string) *Extractor {
	newExt := e.clone()
	newExt.options.speaker = name
	return newExt
}

// WithoutNumbers omits the "## Discourse N" headings from markdown
// output.
func (e *Extractor) WithoutNumbers() *Extractor {
	newExt := e.clone()
	newExt.options.numberRecords = false
	return newExt
}

// WithRecognizer supplies the OCR engine used when the source is a
// directory of page scans. Without one, a default client is created,
// which requires the module to be built with the "ocr" tag.
func (e *Extractor) WithRecognizer(r source.Recognizer) *Extractor {
	newExt := e.clone()
	newExt.options.recognizer = r
	return newExt
}

// Document runs the full pipeline and returns the extracted document.
func (e *Extractor) Document() (model.Document, error) {
	if e.err != nil {
		return model.Document{}, e.err
	}

	pages, err := e.loadPages()
	if err != nil {
		return model.Document{}, err
	}

	records := extractRecords(pages)

	title := e.options.volumeTitle
	if title == "" {
		title = volume.Title(e.filename)
	}

	doc := model.Document{Title: title, Records: records}
	if e.options.speaker != "" {
		doc = volume.FilterBySpeaker(doc, e.options.speaker)
	}
	return doc, nil
}

// Records runs the full pipeline and returns just the records.
func (e *Extractor) Records() ([]model.Record, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.Records, nil
}

// Markdown runs the full pipeline and renders the document as markdown.
func (e *Extractor) Markdown() (string, error) {
	doc, err := e.Document()
	if err != nil {
		return "", err
	}
	cfg := render.DefaultMarkdownConfig()
	cfg.NumberRecords = e.options.numberRecords
	return render.MarkdownWithConfig(doc, cfg), nil
}

// JSON runs the full pipeline and renders the document as indented
// JSON.
func (e *Extractor) JSON() ([]byte, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return render.JSON(doc)
}

// loadPages resolves the configured source into pages.
func (e *Extractor) loadPages() ([]model.Page, error) {
	if e.havePages {
		return e.pages, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no source specified")
	}

	info, err := os.Stat(e.filename)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	if info.IsDir() {
		rec := e.options.recognizer
		if rec == nil {
			client, err := ocr.New()
			if err != nil {
				return nil, fmt.Errorf("page scans need an OCR engine: %w", err)
			}
			defer client.Close()
			rec = client
		}
		return source.ReadScans(e.filename, rec)
	}

	switch strings.ToLower(filepath.Ext(e.filename)) {
	case ".html", ".htm":
		return source.ReadHTML(e.filename)
	default:
		return source.ReadText(e.filename)
	}
}

// extractRecords runs the core pipeline over raw pages: clean each page
// independently, dehyphenate the concatenated stream, classify every
// line once, detect boundaries, then extract metadata and reconstruct
// paragraphs per boundary.
func extractRecords(pages []model.Page) []model.Record {
	cleaner := clean.New()
	lines := clean.Dehyphenate(cleaner.CleanPages(pages))

	classifier := classify.New()
	cur := scan.New(lines, classifier.Annotate(lines))

	blocks := boundary.New().Detect(cur)

	extractor := metadata.New()
	segmenter := content.New()

	var records []model.Record
	for i, block := range blocks {
		fields := extractor.Extract(cur, block)

		end := cur.Len()
		if i+1 < len(blocks) {
			end = blocks[i+1].Start
		}
		paragraphs := segmenter.Paragraphs(cur.Span(block.TitleEnd, end), fields.Title)

		records = append(records, model.Record{
			Title:      fields.Title,
			Speaker:    fields.Speaker,
			Location:   fields.Location,
			Date:       fields.Date,
			Reporter:   fields.Reporter,
			Paragraphs: paragraphs,
		})
	}
	return records
}
