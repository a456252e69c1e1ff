package model

import (
	"reflect"
	"testing"
)

func TestRecord_Content(t *testing.T) {
	r := Record{Paragraphs: []string{"First paragraph.", "Second paragraph."}}
	want := "First paragraph.\n\nSecond paragraph."
	if got := r.Content(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := (Record{}).Content(); got != "" {
		t.Errorf("expected empty content for no paragraphs, got %q", got)
	}
}

func TestDocument_Speakers(t *testing.T) {
	doc := Document{
		Records: []Record{
			{Speaker: "PRESIDENT BRIGHAM YOUNG"},
			{Speaker: "ELDER JOHN TAYLOR"},
			{Speaker: "PRESIDENT BRIGHAM YOUNG"},
			{Speaker: ""},
		},
	}

	got := doc.Speakers()
	want := []string{"PRESIDENT BRIGHAM YOUNG", "ELDER JOHN TAYLOR"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
