package clean

import (
	"reflect"
	"testing"
)

func TestDehyphenate(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "trailing hyphen merges with lowercase continuation",
			in:   []string{"exam-", "ple text"},
			want: []string{"example text"},
		},
		{
			name: "merge preserves preceding words",
			in:   []string{"the blessings of heaven attend the assem-", "bly of the faithful."},
			want: []string{"the blessings of heaven attend the assembly of the faithful."},
		},
		{
			name: "uppercase continuation is left alone",
			in:   []string{"spoke of the Latter-", "Day work"},
			want: []string{"spoke of the Latter-", "Day work"},
		},
		{
			name: "hyphen inside a line is left alone",
			in:   []string{"a well-known truth", "follows here"},
			want: []string{"a well-known truth", "follows here"},
		},
		{
			name: "trailing hyphen on the last line is left alone",
			in:   []string{"ends with exam-"},
			want: []string{"ends with exam-"},
		},
		{
			name: "merge consumes the continuation line",
			in:   []string{"first por-", "tion done,", "and a second line."},
			want: []string{"first portion done,", "and a second line."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dehyphenate(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDehyphenate_TrailingSpacesAfterHyphen(t *testing.T) {
	got := Dehyphenate([]string{"attend the assem-  ", "bly of the faithful."})
	want := []string{"attend the assembly of the faithful."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
