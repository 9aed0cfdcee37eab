package strand

// Stats holds structural metrics for a LinkStrand.
type Stats struct {
	// Size is the total byte count.
	Size int

	// Segments is the number of segments in the chain, including empty ones.
	Segments int

	// EmptySegments counts segments holding no text.
	EmptySegments int

	// Appends is the append count since the last Initialize.
	Appends int

	// CursorIndex is the global index cached by the last CharAt.
	CursorIndex int
}

// AverageSegmentLen returns the mean bytes per segment.
func (s Stats) AverageSegmentLen() float64 {
	if s.Segments == 0 {
		return 0
	}
	return float64(s.Size) / float64(s.Segments)
}
