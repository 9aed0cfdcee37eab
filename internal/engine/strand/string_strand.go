package strand

// StringStrand is a strand backed by one immutable string.
// Every Append allocates and copies the whole content, so it is O(n).
type StringStrand struct {
	info    string
	appends int
}

// NewStringStrand creates a StringStrand holding source.
func NewStringStrand(source string) *StringStrand {
	s := &StringStrand{}
	s.Initialize(source)
	return s
}

// Initialize replaces the content with source.
func (s *StringStrand) Initialize(source string) {
	s.info = source
	s.appends = 0
}

// Instance returns a new StringStrand holding source.
func (s *StringStrand) Instance(source string) Strand {
	return NewStringStrand(source)
}

// Size returns the string length.
func (s *StringStrand) Size() int {
	return len(s.info)
}

// Append concatenates text onto the content.
func (s *StringStrand) Append(text string) Strand {
	s.info = s.info + text
	s.appends++
	return s
}

// AppendCount returns the number of Append calls since the last Initialize.
func (s *StringStrand) AppendCount() int {
	return s.appends
}

// CharAt returns the byte at index.
func (s *StringStrand) CharAt(index int) (byte, error) {
	if err := checkIndex(index, len(s.info)); err != nil {
		return 0, err
	}
	return s.info[index], nil
}

// Reverse returns a new StringStrand with the content reversed.
func (s *StringStrand) Reverse() Strand {
	buf := DefaultBufferPool.Get(len(s.info))
	defer DefaultBufferPool.Put(buf)
	reverseInto(buf, s.info)
	return NewStringStrand(string(buf))
}

// String returns the content.
func (s *StringStrand) String() string {
	return s.info
}
