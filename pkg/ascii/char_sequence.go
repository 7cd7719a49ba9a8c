package ascii

// CharSequence is an abstract, read-only view over a 16-bit-code-unit
// sequence backed by either an AsciiString or a native Go string. HTTP
// header and cookie grammar is pure ASCII, so a byte-indexed Go string view
// and a notional UTF-16 view agree on every code point this codec can
// legally carry; Go has no native UTF-16 string type to mirror exactly.
type CharSequence interface {
	// Len returns the number of code units.
	Len() int
	// At returns the code unit at index i. Panics if i is out of range.
	At(i int) uint16
	// Sub returns the sub-view [start, end) of the same concrete kind.
	Sub(start, end int) CharSequence
	// IndexOf returns the index of the first occurrence of needle, or -1.
	IndexOf(needle CharSequence) int
	// RegionMatches compares a length-unit region of this sequence
	// (starting at toffset) against a region of other (starting at
	// ooffset), optionally ignoring ASCII case.
	RegionMatches(toffset int, other CharSequence, ooffset, length int, ignoreCase bool) bool
	// SequenceEqual reports whether this sequence equals other, optionally
	// ignoring ASCII case.
	SequenceEqual(other CharSequence, ignoreCase bool) bool
	// String renders the sequence as a native Go string.
	String() string
	// Hash returns the sequence's ASCII hash, matching AsciiString's single
	// sanitized hash contract (spec §4.1): the same value serves both
	// case-sensitive and case-insensitive lookups in a HeaderMap, the two
	// differing only in their Equal relation, not their hash.
	Hash() uint32
}

// byteStringView adapts an AsciiString to CharSequence.
type byteStringView struct{ s AsciiString }

// ViewByteString wraps s as a CharSequence.
func ViewByteString(s AsciiString) CharSequence { return byteStringView{s} }

func (v byteStringView) Len() int           { return v.s.Len() }
func (v byteStringView) At(i int) uint16    { return v.s.CodeUnitAt(i) }
func (v byteStringView) Sub(start, end int) CharSequence {
	return byteStringView{v.s.Sub(start, end)}
}
func (v byteStringView) String() string { return v.s.String() }
func (v byteStringView) Hash() uint32   { return v.s.Hash() }

func (v byteStringView) IndexOf(needle CharSequence) int {
	return genericIndexOf(v, needle)
}

func (v byteStringView) RegionMatches(toffset int, other CharSequence, ooffset, length int, ignoreCase bool) bool {
	return genericRegionMatches(v, toffset, other, ooffset, length, ignoreCase)
}

func (v byteStringView) SequenceEqual(other CharSequence, ignoreCase bool) bool {
	return genericSequenceEqual(v, other, ignoreCase)
}

// nativeStringView adapts a Go string to CharSequence, byte-indexed.
type nativeStringView struct {
	s          string
	start, end int
}

// ViewString wraps s as a CharSequence.
func ViewString(s string) CharSequence { return nativeStringView{s: s, start: 0, end: len(s)} }

func (v nativeStringView) Len() int { return v.end - v.start }

func (v nativeStringView) At(i int) uint16 {
	if i < 0 || i >= v.Len() {
		panic(wrapErr("At", ErrIndexOutOfRange))
	}
	return uint16(v.s[v.start+i])
}

func (v nativeStringView) Sub(start, end int) CharSequence {
	if start < 0 || end > v.Len() || start > end {
		panic(wrapErr("Sub", ErrIndexOutOfRange))
	}
	return nativeStringView{s: v.s, start: v.start + start, end: v.start + end}
}

func (v nativeStringView) String() string { return v.s[v.start:v.end] }

func (v nativeStringView) Hash() uint32 {
	return hashCodeASCII([]byte(v.s[v.start:v.end]))
}

func (v nativeStringView) IndexOf(needle CharSequence) int {
	return genericIndexOf(v, needle)
}

func (v nativeStringView) RegionMatches(toffset int, other CharSequence, ooffset, length int, ignoreCase bool) bool {
	return genericRegionMatches(v, toffset, other, ooffset, length, ignoreCase)
}

func (v nativeStringView) SequenceEqual(other CharSequence, ignoreCase bool) bool {
	return genericSequenceEqual(v, other, ignoreCase)
}

func genericRegionMatches(s CharSequence, toffset int, other CharSequence, ooffset, length int, ignoreCase bool) bool {
	if toffset < 0 || ooffset < 0 || toffset+length > s.Len() || ooffset+length > other.Len() {
		return false
	}
	for i := 0; i < length; i++ {
		a, b := s.At(toffset+i), other.At(ooffset+i)
		if ignoreCase {
			a, b = foldUnit(a), foldUnit(b)
		}
		if a != b {
			return false
		}
	}
	return true
}

func genericSequenceEqual(s, other CharSequence, ignoreCase bool) bool {
	if s.Len() != other.Len() {
		return false
	}
	return genericRegionMatches(s, 0, other, 0, s.Len(), ignoreCase)
}

func genericIndexOf(s, needle CharSequence) int {
	n, m := s.Len(), needle.Len()
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s.Sub(i, i+m).SequenceEqual(needle, false) {
			return i
		}
	}
	return -1
}

func foldUnit(u uint16) uint16 {
	if u >= 'A' && u <= 'Z' {
		return u + 32
	}
	return u
}
