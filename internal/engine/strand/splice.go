package strand

import "strings"

// CutAndSplice simulates cutting s with a restriction enzyme and splicing
// in new material.
//
// Every non-overlapping occurrence of enzyme, scanning left to right, is
// replaced by splicee. The result is a new strand of the same variant as s:
// it starts as an instance of the text before the first occurrence, then for
// each occurrence splicee is appended followed by the text up to the next
// occurrence. Trailing text after the last occurrence is appended only when
// non-empty. When enzyme does not occur the result holds a copy of s with no
// appends. s is not modified.
func CutAndSplice(s Strand, enzyme, splicee string) (Strand, error) {
	if enzyme == "" {
		return nil, ErrEmptyEnzyme
	}

	search := s.String()
	pos := strings.Index(search, enzyme)
	if pos < 0 {
		return s.Instance(search), nil
	}

	ret := s.Instance(search[:pos])
	for pos >= 0 {
		ret.Append(splicee)
		start := pos + len(enzyme)
		next := strings.Index(search[start:], enzyme)
		if next < 0 {
			if start < len(search) {
				ret.Append(search[start:])
			}
			break
		}
		ret.Append(search[start : start+next])
		pos = start + next
	}
	return ret, nil
}
