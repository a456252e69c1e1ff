package discourse

import "github.com/tsawler/discourse/source"

// ExtractOptions holds configuration for record extraction.
type ExtractOptions struct {
	// Output shaping
	volumeTitle   string // "" means derive from the source filename
	numberRecords bool

	// Record filtering
	speaker string // "" means keep all records

	// Page-scan recognition
	recognizer source.Recognizer
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		volumeTitle:   "",
		numberRecords: true,
		speaker:       "",
		recognizer:    nil,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		volumeTitle:   o.volumeTitle,
		numberRecords: o.numberRecords,
		speaker:       o.speaker,
		recognizer:    o.recognizer,
	}
}
