package strand

// SegmentIterator walks the segments of a LinkStrand from head to tail.
// It does not move the strand's CharAt cursor.
type SegmentIterator struct {
	next    *segment
	seg     *segment
	offset  int
	started bool
}

// Segments returns an iterator over the strand's segments.
func (s *LinkStrand) Segments() *SegmentIterator {
	return &SegmentIterator{next: s.head}
}

// Next advances to the next segment.
// Returns true if there is a segment, false if iteration is complete.
func (it *SegmentIterator) Next() bool {
	if it.started && it.seg != nil {
		it.offset += it.seg.Len()
	}
	it.started = true
	it.seg = it.next
	if it.seg == nil {
		return false
	}
	it.next = it.seg.next
	return true
}

// Text returns the current segment's text.
func (it *SegmentIterator) Text() string {
	if it.seg == nil {
		return ""
	}
	return it.seg.text
}

// Offset returns the global index of the current segment's first byte.
func (it *SegmentIterator) Offset() int {
	return it.offset
}

// Len returns the byte length of the current segment.
func (it *SegmentIterator) Len() int {
	if it.seg == nil {
		return 0
	}
	return it.seg.Len()
}
