// Package strand provides interchangeable representations of a large character
// sequence that is built once from source text and then grown by repeated appends.
//
// Three variants satisfy the Strand interface:
//   - LinkStrand keeps a chain of immutable segments with O(1) append and a
//     forward-biased cursor that makes sequential CharAt calls O(1) amortized
//   - BuilderStrand keeps a single growable byte buffer
//   - StringStrand concatenates immutable strings on every append
//
// The two simple variants exist for correctness and performance comparison
// against LinkStrand. Characters are bytes; strands are intended for ASCII
// genomic text but no alphabet validation is performed.
//
// Basic usage:
//
//	s := strand.NewLinkStrand("acgt")
//	s.Append("ttt").Append("a")
//	c, err := s.CharAt(4)           // 't'
//	r := s.Reverse()                // "atttgca"
//	text := s.String()              // "acgttta"
//
// Strands are not safe for concurrent use. CharAt moves a cached cursor even
// though it does not change the strand's value, so callers must serialize all
// access to a given instance.
package strand
