package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/discourse/model"
)

// ReadText reads pre-extracted volume text from a file. Pages are
// separated by form-feed characters, the convention of most PDF text
// extractors; a file with no form feeds is a single page.
func ReadText(filename string) ([]model.Page, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadTextFrom(f)
}

// ReadTextFrom reads form-feed separated page text from r.
func ReadTextFrom(r io.Reader) ([]model.Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}
	return PagesFromString(string(data)), nil
}

// PagesFromString splits form-feed separated text into pages.
func PagesFromString(text string) []model.Page {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var pages []model.Page
	for i, chunk := range strings.Split(text, "\f") {
		pages = append(pages, model.Page{
			Number: i + 1,
			Lines:  strings.Split(chunk, "\n"),
		})
	}
	return pages
}
