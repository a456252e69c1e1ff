package classify

import "testing"

func TestClassify_PageFurniture(t *testing.T) {
	c := New()

	furniture := []string{
		"",
		"   ",
		"217",
		"218 JOURNAL OF DISCOURSES.",
		"JOURNAL OF DISCOURSES.",
		"THE GATHERING OF THE SAINTS. 45",
	}
	for _, line := range furniture {
		if !c.PageFurniture(line) {
			t.Errorf("expected %q to be page furniture", line)
		}
	}

	kept := []string{
		"REMARKS",
		"BY PRESIDENT BRIGHAM YOUNG,",
		"The brethren assembled early in the morning.",
		"REPORTED BY G. D. WATT.",
	}
	for _, line := range kept {
		if c.PageFurniture(line) {
			t.Errorf("did not expect %q to be page furniture", line)
		}
	}
}

func TestClassify_Classes(t *testing.T) {
	c := New()

	tests := []struct {
		line string
		want Class
	}{
		{"", Blank},
		{"42", PageNumber},
		{"JOURNAL OF DISCOURSES.", RunningHeader},
		{"REPORTED BY G. D. WATT.", ReporterCue},
		{"BY PRESIDENT BRIGHAM YOUNG,", SpeakerCue},
		{"DELIVERED IN THE TABERNACLE, GREAT SALT LAKE CITY.", LocationCue},
		{"REMARKS", AllCapsCandidate},
		{"The brethren assembled early.", Body},
	}
	for _, tt := range tests {
		got := c.Classify(tt.line).Class
		if got != tt.want {
			t.Errorf("Classify(%q).Class = %s, want %s", tt.line, got, tt.want)
		}
	}
}

func TestClassify_SecondaryFacts(t *testing.T) {
	c := New()

	ann := c.Classify("DELIVERED IN THE TABERNACLE, GREAT SALT LAKE CITY, JANUARY 1ST, 1860.")
	if !ann.LocationCue {
		t.Error("expected location cue")
	}
	if !ann.HasDate {
		t.Error("expected date")
	}
	if !ann.AllCaps {
		t.Error("expected all caps")
	}

	ann = c.Classify("GREAT SALT LAKE CITY. 217")
	if !ann.HeaderTail {
		t.Error("expected header tail shape")
	}

	ann = c.Classify("AMEN.")
	if !ann.Amen {
		t.Error("expected AMEN line")
	}
}

func TestAllCaps(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"REMARKS", true},
		{"BY PRESIDENT BRIGHAM YOUNG,", true},
		{"A DISCOURSE, 1860.", true},
		{"Remarks", false},
		{"remarks", false},
		{"1860", false}, // no cased letters at all
		{"", false},
	}
	for _, tt := range tests {
		if got := AllCaps(tt.in); got != tt.want {
			t.Errorf("AllCaps(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFindDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DELIVERED JANUARY 1ST, 1860.", "JANUARY 1ST, 1860"},
		{"JUNE 5, 1853", "JUNE 5, 1853"},
		{"AUGUST 22ND, 1852 IN THE TABERNACLE", "AUGUST 22ND, 1852"},
		{"no date here", ""},
	}
	for _, tt := range tests {
		if got := FindDate(tt.in); got != tt.want {
			t.Errorf("FindDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripDate(t *testing.T) {
	rest, date := StripDate("THE BOWERY, JUNE 5TH, 1853. MORNING")
	if date != "JUNE 5TH, 1853" {
		t.Errorf("expected date, got %q", date)
	}
	if rest != "THE BOWERY, . MORNING" {
		t.Errorf("unexpected remainder %q", rest)
	}

	rest, date = StripDate("no date at all")
	if date != "" || rest != "no date at all" {
		t.Errorf("expected passthrough, got (%q, %q)", rest, date)
	}
}

func TestIsVerification(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"REPORTED BY G. D. WATT.", true},
		{"AS REPORTED BY DAVID W. EVANS.", true},
		{"BEFORE THE HON. Z. SNOW, JUDGE OF SAID COURT.", true},
		{"BEFORE THE HON. Z. SNOW.", false}, // no JUDGE in the same line
		{"AN ORDINARY HEADING LINE", false},
	}
	for _, tt := range tests {
		if got := IsVerification(tt.line); got != tt.want {
			t.Errorf("IsVerification(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
