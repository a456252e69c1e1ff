package source

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// register decoders for the formats page scans arrive in
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/tsawler/discourse/model"
)

// Recognizer converts a page-scan image to text. The ocr package
// provides a Tesseract-backed implementation behind the "ocr" build tag.
type Recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

var scanExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true,
	".tif": true, ".tiff": true, ".bmp": true, ".gif": true,
}

// ListScans returns the page-scan image files in dir, sorted by name.
// Scan sets are conventionally named so lexical order is page order.
func ListScans(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading scan directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if scanExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// DecodeScan loads a scan image and re-encodes it as PNG, the one
// format every OCR engine accepts. TIFF and BMP scans are handled via
// the x/image decoders registered above.
func DecodeScan(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening scan: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding scan %s: %w", filepath.Base(filename), err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding scan %s: %w", filepath.Base(filename), err)
	}
	return buf.Bytes(), nil
}

// ReadScans recognizes every page scan in dir through r, in page order.
func ReadScans(dir string, r Recognizer) ([]model.Page, error) {
	files, err := ListScans(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no page scans found in %s", dir)
	}

	var pages []model.Page
	for i, file := range files {
		data, err := DecodeScan(file)
		if err != nil {
			return nil, err
		}
		text, err := r.RecognizeImage(data)
		if err != nil {
			return nil, fmt.Errorf("recognizing %s: %w", filepath.Base(file), err)
		}
		pages = append(pages, model.Page{
			Number: i + 1,
			Lines:  strings.Split(text, "\n"),
		})
	}
	return pages, nil
}
