package boundary

import (
	"strings"

	"github.com/tsawler/discourse/classify"
	"github.com/tsawler/discourse/model"
	"github.com/tsawler/discourse/scan"
)

// Config holds configuration for boundary detection.
type Config struct {
	// GuardWindow is how many lines past an emitted boundary's end are
	// skipped before a new candidate may start, preventing a verified
	// block's own trailing lines from re-triggering detection.
	// Default: 3
	GuardWindow int

	// MinCandidateLen is the minimum length of the first candidate
	// all-caps line.
	// Default: 5
	MinCandidateLen int

	// MinContextLen is the minimum length of all-caps lines picked up
	// by the backward walk.
	// Default: 4
	MinContextLen int

	// ForwardCap is the maximum number of lines the forward walk
	// examines past the candidate.
	// Default: 15
	ForwardCap int

	// SkipCap is the maximum number of blank or running-header lines
	// the forward walk skips over before giving up.
	// Default: 10
	SkipCap int

	// VerifyWindow is how many lines ahead of a speaker or location
	// cue the detector searches for the verification phrase.
	// Default: 8
	VerifyWindow int

	// Classify supplies the corpus-specific line patterns.
	Classify classify.Config
}

// DefaultConfig returns sensible defaults for boundary detection.
func DefaultConfig() Config {
	return Config{
		GuardWindow:     3,
		MinCandidateLen: 5,
		MinContextLen:   4,
		ForwardCap:      15,
		SkipCap:         10,
		VerifyWindow:    8,
		Classify:        classify.DefaultConfig(),
	}
}

// Detector finds verified title-block boundaries in a line stream.
type Detector struct {
	config     Config
	classifier *classify.Classifier
}

// New creates a detector with the default configuration.
func New() *Detector {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a detector with custom configuration.
func NewWithConfig(config Config) *Detector {
	return &Detector{
		config:     config,
		classifier: classify.NewWithConfig(config.Classify),
	}
}

// Detect scans the full stream and returns every verified title block,
// in order. Blocks are non-overlapping and strictly increasing in Start.
func (d *Detector) Detect(cur *scan.Cursor) []model.TitleBlock {
	var blocks []model.TitleBlock
	lastEnd := -1

	cur.Seek(0)
	for !cur.Done() {
		i := cur.Pos()

		// Inside the guard window of the previous boundary.
		if i < lastEnd+d.config.GuardWindow {
			cur.Advance()
			continue
		}

		ann := cur.Ann()
		line := cur.Line()
		if ann.Class == classify.Blank || ann.Amen {
			cur.Advance()
			continue
		}
		if !ann.AllCaps || len(line) < d.config.MinCandidateLen || ann.HeaderTail {
			cur.Advance()
			continue
		}

		start, titleLines := d.extendBackward(cur, i)
		block, end := d.extendForward(cur, i, start, titleLines)
		if block != nil {
			blocks = append(blocks, *block)
			lastEnd = block.TitleEnd
		}

		if end > i {
			cur.Seek(end)
		} else {
			cur.Seek(i + 1)
		}
	}

	return blocks
}

// extendBackward walks backward from the candidate at i, prepending
// preceding all-caps lines to the title block. Blank and AMEN lines are
// stepped over without ending the walk; the first line failing the
// heading conditions ends it.
func (d *Detector) extendBackward(cur *scan.Cursor, i int) (start int, titleLines []string) {
	start = i
	for lb := i - 1; lb >= 0; lb-- {
		ann := cur.AnnAt(lb)
		line := cur.LineAt(lb)

		if ann.Class == classify.Blank || ann.Amen {
			continue
		}
		if !ann.AllCaps || len(line) < d.config.MinContextLen || ann.HeaderTail {
			break
		}
		if !strings.Contains(line, "AMEN") {
			titleLines = append([]string{line}, titleLines...)
			start = lb
		}
	}
	return start, titleLines
}

// extendForward walks forward from the candidate at i accumulating
// heading lines, and attempts verification whenever a speaker or
// location cue appears. It returns the verified block (or nil) and the
// stream position the outer scan should resume from.
func (d *Detector) extendForward(cur *scan.Cursor, i, start int, titleLines []string) (*model.TitleBlock, int) {
	j := i
	for j < cur.Len() {
		ann := cur.AnnAt(j)
		line := cur.LineAt(j)

		// Step over blanks and running headers, up to the skip cap.
		if ann.Class == classify.Blank || ann.HeaderTail {
			j++
			if j-i > d.config.SkipCap {
				break
			}
			continue
		}

		if !ann.AllCaps {
			// The heading run ended without a cue on the current line.
			// If an accumulated line already carries a speaker cue, give
			// the block one verification attempt before abandoning it.
			if len(titleLines) >= 1 && d.anySpeakerCue(titleLines) && d.verified(cur, j) {
				return &model.TitleBlock{Start: start, TitleEnd: j, TitleLines: titleLines}, j
			}
			return nil, j
		}

		if strings.Contains(line, "AMEN") {
			j++
			continue
		}
		if !containsLine(titleLines, line) {
			titleLines = append(titleLines, line)
		}
		j++

		if (ann.SpeakerCue || ann.LocationCue) && len(titleLines) > 0 && d.verified(cur, j) {
			return &model.TitleBlock{Start: start, TitleEnd: j, TitleLines: titleLines}, j
		}

		if j-i > d.config.ForwardCap {
			break
		}
	}
	return nil, j
}

// verified searches the lookahead window starting at j for the
// corroborating phrase.
func (d *Detector) verified(cur *scan.Cursor, j int) bool {
	ok := false
	cur.Lookahead(j, d.config.VerifyWindow, func(line string, _ classify.Annotation) bool {
		if classify.IsVerification(line) {
			ok = true
			return false
		}
		return true
	})
	return ok
}

func (d *Detector) anySpeakerCue(lines []string) bool {
	for _, line := range lines {
		if d.classifier.Classify(line).SpeakerCue {
			return true
		}
	}
	return false
}

func containsLine(lines []string, line string) bool {
	for _, l := range lines {
		if l == line {
			return true
		}
	}
	return false
}
