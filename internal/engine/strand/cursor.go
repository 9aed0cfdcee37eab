package strand

// cursor caches the position of the last CharAt lookup in a segment chain.
//
// Segments have no backward links, so the cursor can only move forward.
// A lookup behind the cursor rewinds to the head and walks forward again:
// sequential scans cost O(1) amortized per character while a backward jump
// costs O(k) in the distance from the head.
type cursor struct {
	index int      // global index of the cached position
	local int      // offset within seg
	seg   *segment // segment containing index, unless index == size
}

// reset positions the cursor at the start of the chain.
func (c *cursor) reset(head *segment) {
	c.index = 0
	c.local = 0
	c.seg = head
}

// seek moves the cursor to target and returns the byte there.
// The caller guarantees 0 <= target < size of the chain starting at head.
func (c *cursor) seek(head *segment, target int) byte {
	if target < c.index || c.seg == nil {
		c.reset(head)
	}

	// Whole segments that end at or before target are skipped in one step.
	// Empty segments have nothing remaining and are always skipped.
	for {
		remaining := c.seg.Len() - c.local
		if target-c.index < remaining {
			break
		}
		c.index += remaining
		c.local = 0
		c.seg = c.seg.next
	}

	c.local += target - c.index
	c.index = target
	return c.seg.text[c.local]
}
