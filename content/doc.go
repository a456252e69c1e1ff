// Package content turns the line span between two record boundaries
// into clean body paragraphs.
//
// The span usually opens with echoes of the heading (the title printed
// again, in capitals). [Segmenter] strips those, then reflows the
// remaining lines into paragraphs: a blank line always breaks, and a
// soft break is inferred where sentence-ending punctuation meets a
// capitalized or quoted next line. The soft-break rule is a best-effort
// approximation; mis-splits on quoted dialogue or mid-sentence proper
// nouns are expected edge-case noise, not defects.
package content
