package discourse

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/discourse/model"
)

// testVolume is a miniature three-page volume with running headers,
// a split word across the second page boundary, and one full heading.
func testVolume() []model.Page {
	return []model.Page{
		{Number: 1, Lines: []string{
			"JOURNAL OF DISCOURSES.",
			"",
			"REMARKS",
			"BY PRESIDENT BRIGHAM YOUNG,",
			"DELIVERED IN THE TABERNACLE, GREAT SALT LAKE CITY, JANUARY 1ST, 1860.",
			"REPORTED BY G. D. WATT.",
			"",
			"The brethren assembled early in the morning,",
			"and the choir sang a hymn of praise.",
		}},
		{Number: 2, Lines: []string{
			"2 JOURNAL OF DISCOURSES.",
			"We rejoice in the privilege of meeting together,",
			"for the blessings of heaven attend the assem-",
			"bly of the faithful in these valleys.",
		}},
		{Number: 3, Lines: []string{
			"REMARKS. 3",
			"The speaker closed with a blessing upon the people.",
		}},
	}
}

// twoDiscourseVolume holds two verified headings on one page.
func twoDiscourseVolume() []model.Page {
	return []model.Page{
		{Number: 1, Lines: []string{
			"REMARKS",
			"BY PRESIDENT BRIGHAM YOUNG,",
			"REPORTED BY G. D. WATT.",
			"The first discourse body stands here with enough text.",
			"THE GATHERING OF THE SAINTS",
			"BY ELDER JOHN TAYLOR,",
			"REPORTED BY G. D. WATT.",
			"The second discourse body stands here as well.",
		}},
	}
}

func TestFromPages_EndToEnd(t *testing.T) {
	doc, err := FromPages(testVolume()).
		VolumeTitle("JOURNAL OF DISCOURSES - VOLUME 1").
		Document()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if doc.Title != "JOURNAL OF DISCOURSES - VOLUME 1" {
		t.Errorf("expected overridden volume title, got %q", doc.Title)
	}
	if len(doc.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(doc.Records))
	}

	r := doc.Records[0]
	if r.Title != "REMARKS" {
		t.Errorf("expected title REMARKS, got %q", r.Title)
	}
	if r.Speaker != "PRESIDENT BRIGHAM YOUNG" {
		t.Errorf("expected speaker PRESIDENT BRIGHAM YOUNG, got %q", r.Speaker)
	}
	if r.Date != "JANUARY 1ST, 1860" {
		t.Errorf("expected date JANUARY 1ST, 1860, got %q", r.Date)
	}
	if r.Reporter != "G. D. WATT" {
		t.Errorf("expected reporter G. D. WATT, got %q", r.Reporter)
	}
	if !strings.Contains(r.Location, "TABERNACLE") {
		t.Errorf("expected location to name the tabernacle, got %q", r.Location)
	}

	if len(r.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %v", len(r.Paragraphs), r.Paragraphs)
	}
	if !strings.Contains(r.Paragraphs[0], "The brethren assembled early in the morning") {
		t.Errorf("unexpected first paragraph %q", r.Paragraphs[0])
	}
	if !strings.HasPrefix(r.Paragraphs[1], "We rejoice") {
		t.Errorf("unexpected second paragraph %q", r.Paragraphs[1])
	}

	// The word split across the page boundary is rejoined.
	if !strings.Contains(r.Paragraphs[1], "attend the assembly of the faithful") {
		t.Errorf("expected hyphenated word rejoined, got %q", r.Paragraphs[1])
	}

	// Running headers and page numbers never reach the output.
	if strings.Contains(r.Content(), "JOURNAL OF DISCOURSES.") {
		t.Error("expected running headers stripped from the body")
	}
}

func TestFromPages_Deterministic(t *testing.T) {
	first, err := FromPages(testVolume()).Markdown()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := FromPages(testVolume()).Markdown()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first != second {
		t.Error("expected identical output across runs")
	}

	docA, _ := FromPages(testVolume()).Document()
	docB, _ := FromPages(testVolume()).Document()
	if !reflect.DeepEqual(docA, docB) {
		t.Error("expected identical documents across runs")
	}
}

func TestFromPages_UnverifiedHeadingIgnored(t *testing.T) {
	pages := []model.Page{
		{Number: 1, Lines: []string{
			"A SOLEMN WARNING",
			"BY ELDER ORSON PRATT,",
			"no reporter credit follows anywhere,",
			"so this heading never becomes a record.",
		}},
	}

	records, err := FromPages(pages).Records()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records without verification, got %d", len(records))
	}
}

func TestExtractor_SpeakerFilter(t *testing.T) {
	doc, err := FromPages(twoDiscourseVolume()).Speaker("john taylor").Document()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(doc.Records) != 1 {
		t.Fatalf("expected 1 record after filtering, got %d", len(doc.Records))
	}
	if doc.Records[0].Speaker != "ELDER JOHN TAYLOR" {
		t.Errorf("expected the John Taylor record, got %q", doc.Records[0].Speaker)
	}
}

func TestExtractor_WithoutNumbers(t *testing.T) {
	md, err := FromPages(twoDiscourseVolume()).WithoutNumbers().Markdown()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(md, "## Discourse") {
		t.Error("expected no discourse numbering in the markdown")
	}
}

func TestExtractor_ChainingDoesNotMutate(t *testing.T) {
	base := FromPages(twoDiscourseVolume())
	filtered := base.Speaker("JOHN TAYLOR")

	baseRecords, err := base.Records()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	filteredRecords, err := filtered.Records()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(baseRecords) != 2 {
		t.Errorf("expected the base extractor unaffected, got %d records", len(baseRecords))
	}
	if len(filteredRecords) != 1 {
		t.Errorf("expected 1 filtered record, got %d", len(filteredRecords))
	}
}

func TestOpen_TextFile(t *testing.T) {
	var content strings.Builder
	for i, page := range testVolume() {
		if i > 0 {
			content.WriteString("\f")
		}
		content.WriteString(strings.Join(page.Lines, "\n"))
	}

	path := filepath.Join(t.TempDir(), "JoD1.txt")
	if err := os.WriteFile(path, []byte(content.String()), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Open(path).Document()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Title != "JOURNAL OF DISCOURSES - VOLUME 1" {
		t.Errorf("expected title derived from the filename, got %q", doc.Title)
	}
	if len(doc.Records) != 1 {
		t.Errorf("expected 1 record, got %d", len(doc.Records))
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt")).Document()
	if err == nil {
		t.Error("expected an error for a missing source file")
	}
}

func TestExtractor_JSON(t *testing.T) {
	data, err := FromPages(testVolume()).JSON()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(string(data), `"speaker": "PRESIDENT BRIGHAM YOUNG"`) {
		t.Errorf("expected speaker field in JSON output, got:\n%s", data)
	}
}

func TestMust(t *testing.T) {
	got := Must("value", nil)
	if got != "value" {
		t.Errorf("expected value passthrough, got %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on error")
		}
	}()
	Must(Open(filepath.Join(t.TempDir(), "missing.txt")).Document())
}
