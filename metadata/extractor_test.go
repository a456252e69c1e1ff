package metadata

import (
	"strings"
	"testing"

	"github.com/tsawler/discourse/classify"
	"github.com/tsawler/discourse/model"
	"github.com/tsawler/discourse/scan"
)

func newTestCursor(lines []string) *scan.Cursor {
	c := classify.New()
	return scan.New(lines, c.Annotate(lines))
}

func TestExtract_FullHeading(t *testing.T) {
	lines := []string{
		"REMARKS",
		"BY PRESIDENT BRIGHAM YOUNG,",
		"DELIVERED IN THE TABERNACLE, GREAT SALT LAKE CITY, JANUARY 1ST, 1860.",
		"REPORTED BY G. D. WATT.",
		"The brethren assembled early in the morning.",
	}
	block := model.TitleBlock{Start: 0, TitleEnd: 2, TitleLines: lines[:2]}

	f := New().Extract(newTestCursor(lines), block)

	if f.Title != "REMARKS" {
		t.Errorf("expected title REMARKS, got %q", f.Title)
	}
	if f.Speaker != "PRESIDENT BRIGHAM YOUNG" {
		t.Errorf("expected speaker PRESIDENT BRIGHAM YOUNG, got %q", f.Speaker)
	}
	if f.Date != "JANUARY 1ST, 1860" {
		t.Errorf("expected date JANUARY 1ST, 1860, got %q", f.Date)
	}
	if f.Reporter != "G. D. WATT" {
		t.Errorf("expected reporter G. D. WATT, got %q", f.Reporter)
	}
	if !strings.Contains(f.Location, "TABERNACLE") {
		t.Errorf("expected location to name the tabernacle, got %q", f.Location)
	}
}

func TestSpeakerTextNormalization(t *testing.T) {
	// Capture plus rewrite pipeline over raw speaker-cue text.
	tests := []struct {
		text string
		want string
	}{
		{"BY B. YOUNG,", "BRIGHAM YOUNG"},
		{"BY P. P. PRATT,", "ELDER PARLEY P. PRATT"},
		{"BY PRESIDENT B. YOUNG,", "PRESIDENT BRIGHAM YOUNG"},
	}
	for _, tt := range tests {
		name := extractSpeakerName(tt.text)
		if name == "" {
			t.Errorf("expected a speaker captured from %q", tt.text)
			continue
		}
		if got := NormalizeSpeaker(name); got != tt.want {
			t.Errorf("NormalizeSpeaker(%q) = %q, want %q", name, got, tt.want)
		}
	}
}

func TestExtract_ReporterShortCircuit(t *testing.T) {
	lines := []string{
		"REMARKS",
		"REPORTED BY DAVID W. EVANS.",
		"TRAILING CAPS NEVER REACHED",
	}
	block := model.TitleBlock{Start: 0, TitleEnd: 1, TitleLines: lines[:1]}

	f := New().Extract(newTestCursor(lines), block)
	if f.Reporter != "DAVID W. EVANS" {
		t.Errorf("expected reporter DAVID W. EVANS, got %q", f.Reporter)
	}
	if f.Title != "REMARKS" {
		t.Errorf("expected title to stop at the reporter credit, got %q", f.Title)
	}
}

func TestExtract_DateEndsTitleAccumulation(t *testing.T) {
	lines := []string{
		"A DISCOURSE",
		"ON CELESTIAL MARRIAGE",
		"SALT LAKE CITY, JUNE 5TH, 1853.",
		"MORE CAPS AFTER THE DATE",
		"REPORTED BY G. D. WATT.",
	}
	block := model.TitleBlock{Start: 0, TitleEnd: 3, TitleLines: lines[:2]}

	f := New().Extract(newTestCursor(lines), block)
	if f.Title != "A DISCOURSE ON CELESTIAL MARRIAGE" {
		t.Errorf("expected title from pre-date lines only, got %q", f.Title)
	}
	if f.Date != "JUNE 5TH, 1853" {
		t.Errorf("expected date JUNE 5TH, 1853, got %q", f.Date)
	}
}

func TestExtract_LookaheadFindsTrailingReporter(t *testing.T) {
	lines := []string{
		"REMARKS",
		"BY ELDER JOHN TAYLOR,",
		"AN INTERVENING CAPS LINE",
		"REPORTED BY G. D. WATT.",
	}
	block := model.TitleBlock{Start: 0, TitleEnd: 2, TitleLines: lines[:2]}

	f := New().Extract(newTestCursor(lines), block)
	if f.Reporter != "G. D. WATT" {
		t.Errorf("expected lookahead to reach the reporter credit, got %q", f.Reporter)
	}
}

func TestExtractSpeakerName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"BY PRESIDENT BRIGHAM YOUNG,", "PRESIDENT BRIGHAM YOUNG"},
		{"BY B. YOUNG,", "B. YOUNG"},
		{"BY JOHN TAYLOR, DELIVERED IN THE BOWERY", "JOHN TAYLOR"},
		{"ELDER ORSON PRATT, DELIVERED IN THE TABERNACLE", "ELDER ORSON PRATT"},
		{"an ordinary line of prose", ""},
	}
	for _, tt := range tests {
		if got := extractSpeakerName(tt.text); got != tt.want {
			t.Errorf("extractSpeakerName(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
