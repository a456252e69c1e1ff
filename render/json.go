package render

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/tsawler/discourse/model"
)

// JSON renders the document as an indented JSON object.
func JSON(doc model.Document) ([]byte, error) {
	data, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// WriteJSON writes the document as indented JSON to w.
func WriteJSON(w io.Writer, doc model.Document) error {
	data, err := JSON(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// WriteJSONL writes one JSON object per record to w, suitable for
// line-oriented ingestion.
func WriteJSONL(w io.Writer, doc model.Document) error {
	for i, r := range doc.Records {
		data, err := sonic.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", i+1, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("writing record %d: %w", i+1, err)
		}
	}
	return nil
}
