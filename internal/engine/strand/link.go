package strand

import "strings"

// LinkStrand is a strand stored as a singly linked chain of immutable segments.
//
// Append adds one segment at the tail in O(1) without copying existing text.
// CharAt uses a cached cursor that favors increasing indices. The zero value
// is an empty strand ready to use.
type LinkStrand struct {
	head    *segment
	tail    *segment
	size    int
	appends int
	cur     cursor
}

// NewLinkStrand creates a LinkStrand holding source as its only segment.
func NewLinkStrand(source string) *LinkStrand {
	s := &LinkStrand{}
	s.Initialize(source)
	return s
}

// Initialize discards all segments and starts over with a single segment
// holding source. The append count and cursor are reset.
func (s *LinkStrand) Initialize(source string) {
	seg := newSegment(source)
	s.head = seg
	s.tail = seg
	s.size = len(source)
	s.appends = 0
	s.cur.reset(seg)
}

// ensure initializes a zero-value strand.
func (s *LinkStrand) ensure() {
	if s.head == nil {
		s.Initialize("")
	}
}

// Instance returns a new LinkStrand holding source.
func (s *LinkStrand) Instance(source string) Strand {
	return NewLinkStrand(source)
}

// Size returns the total number of bytes across all segments.
func (s *LinkStrand) Size() int {
	return s.size
}

// Append links a new segment holding text after the tail.
// The cursor is left where it was; nothing before the old tail changes.
func (s *LinkStrand) Append(text string) Strand {
	s.ensure()
	seg := newSegment(text)
	s.tail.next = seg
	s.tail = seg
	s.size += len(text)
	s.appends++
	return s
}

// AppendCount returns the number of Append calls since the last Initialize.
func (s *LinkStrand) AppendCount() int {
	return s.appends
}

// CharAt returns the byte at index, moving the cursor there.
// On error the cursor is not moved.
func (s *LinkStrand) CharAt(index int) (byte, error) {
	if err := checkIndex(index, s.size); err != nil {
		return 0, err
	}
	return s.cur.seek(s.head, index), nil
}

// Reverse returns a new LinkStrand with the content reversed.
//
// Each segment's text is reversed and placed before the text of the segments
// that precede it, so both the bytes within a segment and the order of
// segments end up reversed. The result is a single fresh segment that shares
// no memory with the receiver.
func (s *LinkStrand) Reverse() Strand {
	buf := DefaultBufferPool.Get(s.size)
	defer DefaultBufferPool.Put(buf)

	end := s.size
	for it := s.Segments(); it.Next(); {
		text := it.Text()
		end -= len(text)
		reverseInto(buf[end:end+len(text)], text)
	}

	return NewLinkStrand(string(buf))
}

// String concatenates all segments in chain order. The cursor is not used.
func (s *LinkStrand) String() string {
	var sb strings.Builder
	sb.Grow(s.size)
	for it := s.Segments(); it.Next(); {
		sb.WriteString(it.Text())
	}
	return sb.String()
}

// Stats returns structural metrics for the strand.
func (s *LinkStrand) Stats() Stats {
	st := Stats{
		Size:        s.size,
		Appends:     s.appends,
		CursorIndex: s.cur.index,
	}
	for it := s.Segments(); it.Next(); {
		st.Segments++
		if it.Len() == 0 {
			st.EmptySegments++
		}
	}
	return st
}

// reverseInto writes text reversed into dst. len(dst) must equal len(text).
func reverseInto(dst []byte, text string) {
	n := len(text)
	for i := 0; i < n; i++ {
		dst[n-1-i] = text[i]
	}
}
