package source

import (
	"fmt"
)

// ByteRange is a half-open byte interval [Start, End) inside one source.
type ByteRange struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// NewByteRange builds a range, panicking when end < start.
func NewByteRange(start, end uint32) ByteRange {
	if end < start {
		panic(fmt.Sprintf("source: invalid byte range [%d, %d)", start, end))
	}
	return ByteRange{Start: start, End: end}
}

func (r ByteRange) Len() uint32 {
	return r.End - r.Start
}

func (r ByteRange) Empty() bool {
	return r.Start == r.End
}

// Contains reports whether off lies inside the range.
func (r ByteRange) Contains(off uint32) bool {
	return off >= r.Start && off < r.End
}

// Union returns the smallest range covering both r and other.
func (r ByteRange) Union(other ByteRange) ByteRange {
	return ByteRange{Start: min(r.Start, other.Start), End: max(r.End, other.End)}
}

func (r ByteRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Span is a byte range tagged with the source it belongs to.
//
// The zero Span ([0,0) on the default source) is the null sentinel: it marks a
// slot that was allocated but never filled and must never be the resolved
// span of a live node.
type Span struct {
	Range  ByteRange
	Source SourceID
}

// NullSpan is the sentinel stored in unfilled span table slots.
var NullSpan = Span{}

// NewSpan is a shorthand for Span{Range: NewByteRange(start, end), Source: src}.
func NewSpan(src SourceID, start, end uint32) Span {
	return Span{Range: NewByteRange(start, end), Source: src}
}

func (s Span) Start() uint32 { return s.Range.Start }
func (s Span) End() uint32   { return s.Range.End }
func (s Span) Len() uint32   { return s.Range.Len() }
func (s Span) Empty() bool   { return s.Range.Empty() }

// IsNull reports whether s is the null sentinel.
func (s Span) IsNull() bool {
	return s == NullSpan
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Source, s.Range.Start, s.Range.End)
}

// Join returns the union of two spans of the same source. Joining spans of
// different sources is a programming error and panics.
func (s Span) Join(other Span) Span {
	if s.Source != other.Source {
		panic(fmt.Sprintf("source: cannot join spans of different sources (%s, %s)", s, other))
	}
	return Span{Range: s.Range.Union(other.Range), Source: s.Source}
}

// Cover is the lenient variant of Join: spans of another source are ignored.
func (s Span) Cover(other Span) Span {
	if s.Source != other.Source {
		return s
	}
	return s.Join(other)
}

// ShiftLeft moves the span n bytes towards the start of the file.
// If n exceeds Start the span is returned unchanged.
func (s Span) ShiftLeft(n uint32) Span {
	if n > s.Range.Start {
		return s
	}
	return Span{Range: ByteRange{Start: s.Range.Start - n, End: s.Range.End - n}, Source: s.Source}
}

// ShiftRight moves the span n bytes towards the end of the file.
func (s Span) ShiftRight(n uint32) Span {
	return Span{Range: ByteRange{Start: s.Range.Start + n, End: s.Range.End + n}, Source: s.Source}
}
