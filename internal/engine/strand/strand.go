package strand

import (
	"fmt"
	"strings"
)

// Strand is the operation set shared by every variant.
//
// Implementations are not safe for concurrent use.
type Strand interface {
	// Initialize resets the strand to represent exactly source and clears
	// the append count.
	Initialize(source string)

	// Instance returns a new strand of the same variant holding source.
	Instance(source string) Strand

	// Size returns the total number of characters.
	Size() int

	// Append adds text to the end and returns the receiver for chaining.
	Append(text string) Strand

	// Reverse returns a new strand holding the reversed content.
	// The receiver is not modified.
	Reverse() Strand

	// CharAt returns the character at index. It fails with an error wrapping
	// ErrIndexOutOfRange when index is not in [0, Size()).
	CharAt(index int) (byte, error)

	// AppendCount returns the number of Append calls since the last Initialize.
	AppendCount() int

	// String returns the entire sequence.
	String() string
}

// Variant identifies a Strand implementation.
type Variant int

const (
	// VariantLink is the linked-segment strand.
	VariantLink Variant = iota
	// VariantBuilder is the growable-buffer strand.
	VariantBuilder
	// VariantString is the naive immutable-string strand.
	VariantString
)

var variantNames = [...]string{
	VariantLink:    "link",
	VariantBuilder: "builder",
	VariantString:  "string",
}

// String returns the variant's name.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	return []Variant{VariantLink, VariantBuilder, VariantString}
}

// ParseVariant parses a variant name. Matching is case-insensitive.
func ParseVariant(name string) (Variant, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, vn := range variantNames {
		if n == vn {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// New creates a strand of the given variant holding source.
func New(v Variant, source string) (Strand, error) {
	switch v {
	case VariantLink:
		return NewLinkStrand(source), nil
	case VariantBuilder:
		return NewBuilderStrand(source), nil
	case VariantString:
		return NewStringStrand(source), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
}

// VariantOf reports the variant of s. The second result is false for
// implementations outside this package.
func VariantOf(s Strand) (Variant, bool) {
	switch s.(type) {
	case *LinkStrand:
		return VariantLink, true
	case *BuilderStrand:
		return VariantBuilder, true
	case *StringStrand:
		return VariantString, true
	default:
		return 0, false
	}
}
