// Package scan provides an explicit cursor over the annotated line
// stream. The boundary detector's guard windows, backward walks, and
// cap-limited forward walks are all expressed through the cursor's
// bounded lookahead instead of raw index arithmetic.
package scan

import "github.com/tsawler/discourse/classify"

// Cursor walks a line stream with its precomputed annotations.
// The zero value is not usable; construct with [New].
type Cursor struct {
	lines []string
	anns  []classify.Annotation
	pos   int
}

// New creates a cursor positioned at the start of the stream.
// lines and anns must be parallel slices.
func New(lines []string, anns []classify.Annotation) *Cursor {
	return &Cursor{lines: lines, anns: anns}
}

// Len returns the total number of lines in the stream.
func (c *Cursor) Len() int {
	return len(c.lines)
}

// Pos returns the current position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Done reports whether the cursor has moved past the last line.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.lines)
}

// Line returns the line at the current position.
func (c *Cursor) Line() string {
	return c.lines[c.pos]
}

// Ann returns the annotation at the current position.
func (c *Cursor) Ann() classify.Annotation {
	return c.anns[c.pos]
}

// LineAt returns the line at an absolute position. The caller must keep
// i within [0, Len()).
func (c *Cursor) LineAt(i int) string {
	return c.lines[i]
}

// AnnAt returns the annotation at an absolute position.
func (c *Cursor) AnnAt(i int) classify.Annotation {
	return c.anns[i]
}

// Advance moves the cursor forward one line.
func (c *Cursor) Advance() {
	c.pos++
}

// Seek moves the cursor to an absolute position.
func (c *Cursor) Seek(i int) {
	c.pos = i
}

// Span returns the lines in [start, end), clamped to the stream bounds.
func (c *Cursor) Span(start, end int) []string {
	if start < 0 {
		start = 0
	}
	if end > len(c.lines) {
		end = len(c.lines)
	}
	if start >= end {
		return nil
	}
	return c.lines[start:end]
}

// Lookahead calls fn for each line in [from, from+n), stopping early at
// the end of the stream or when fn returns false. It does not move the
// cursor.
func (c *Cursor) Lookahead(from, n int, fn func(line string, ann classify.Annotation) bool) {
	end := from + n
	if end > len(c.lines) {
		end = len(c.lines)
	}
	for i := from; i < end; i++ {
		if !fn(c.lines[i], c.anns[i]) {
			return
		}
	}
}
