package strand

// segment is one immutable block of text in a LinkStrand chain.
// A segment is owned by its predecessor (or the strand for the head) and is
// never shared between strands.
type segment struct {
	text string
	next *segment
}

// newSegment creates an unlinked segment.
func newSegment(text string) *segment {
	return &segment{text: text}
}

// Len returns the byte length of the segment's text.
func (s *segment) Len() int {
	return len(s.text)
}
