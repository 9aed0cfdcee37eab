package strand

// BuilderStrand is a strand backed by a single growable byte buffer.
// Append is O(1) amortized and CharAt is O(1).
type BuilderStrand struct {
	buf     []byte
	appends int
}

// NewBuilderStrand creates a BuilderStrand holding source.
func NewBuilderStrand(source string) *BuilderStrand {
	s := &BuilderStrand{}
	s.Initialize(source)
	return s
}

// Initialize replaces the buffer with a copy of source.
func (s *BuilderStrand) Initialize(source string) {
	s.buf = append(make([]byte, 0, len(source)), source...)
	s.appends = 0
}

// Instance returns a new BuilderStrand holding source.
func (s *BuilderStrand) Instance(source string) Strand {
	return NewBuilderStrand(source)
}

// Size returns the buffer length.
func (s *BuilderStrand) Size() int {
	return len(s.buf)
}

// Append writes text to the end of the buffer.
func (s *BuilderStrand) Append(text string) Strand {
	s.buf = append(s.buf, text...)
	s.appends++
	return s
}

// AppendCount returns the number of Append calls since the last Initialize.
func (s *BuilderStrand) AppendCount() int {
	return s.appends
}

// CharAt returns the byte at index.
func (s *BuilderStrand) CharAt(index int) (byte, error) {
	if err := checkIndex(index, len(s.buf)); err != nil {
		return 0, err
	}
	return s.buf[index], nil
}

// Reverse returns a new BuilderStrand with the content reversed.
func (s *BuilderStrand) Reverse() Strand {
	n := len(s.buf)
	out := make([]byte, n)
	for i, b := range s.buf {
		out[n-1-i] = b
	}
	return &BuilderStrand{buf: out}
}

// String returns a copy of the buffer as a string.
func (s *BuilderStrand) String() string {
	return string(s.buf)
}
