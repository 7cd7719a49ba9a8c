// Package ascii provides AsciiString, an immutable 8-bit-clean byte string
// used throughout the header and cookie subsystems, and CharSequence, an
// abstract read-only view over either an AsciiString or a native Go string.
package ascii

import (
	"math"
	"strconv"
)

// AsciiString is an immutable, 8-bit-extended (0-255) byte sequence with a
// precomputed case-insensitive hash. Sub-views share the backing array with
// their parent unless Copy is called explicitly. The zero value is the
// empty string.
//
// AsciiString is a plain value type — copied by value into entry[K,V],
// []AsciiString slices, and every value-receiver method below — so it must
// never carry a sync/atomic field (those embed a noCopy marker that makes
// go vet's copylocks check flag every copy). String() recomputes its
// native-string shadow on each call rather than caching it on the struct.
type AsciiString struct {
	b    []byte
	hash uint32
}

// Empty is the zero-length AsciiString.
var Empty = AsciiString{hash: hashCodeASCII(nil)}

// New copies b into a new AsciiString.
func New(b []byte) AsciiString {
	cp := make([]byte, len(b))
	copy(cp, b)
	return AsciiString{b: cp, hash: hashCodeASCII(cp)}
}

// Unsafe wraps b without copying. The caller must not mutate b afterward;
// doing so violates AsciiString's immutability contract.
func Unsafe(b []byte) AsciiString {
	return AsciiString{b: b, hash: hashCodeASCII(b)}
}

// FromString copies s, rune by rune, into a new AsciiString: each rune up to
// 255 becomes one byte. Runes above 255 — which cannot occur in conforming
// HTTP wire data, and which include the replacement rune for invalid UTF-8 —
// are replaced with '?', matching the source ingest rule for over-wide code
// units.
func FromString(s string) AsciiString {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 255 {
			b = append(b, '?')
		} else {
			b = append(b, byte(r))
		}
	}
	return AsciiString{b: b, hash: hashCodeASCII(b)}
}

// FromCodeUnits builds an AsciiString from a sequence of 16-bit code units,
// folding any unit above 255 to '?'.
func FromCodeUnits(units []uint16) AsciiString {
	b := make([]byte, len(units))
	for i, u := range units {
		if u > 255 {
			b[i] = '?'
		} else {
			b[i] = byte(u)
		}
	}
	return AsciiString{b: b, hash: hashCodeASCII(b)}
}

// Len returns the number of bytes in s.
func (s AsciiString) Len() int { return len(s.b) }

// IsEmpty reports whether s has zero length.
func (s AsciiString) IsEmpty() bool { return len(s.b) == 0 }

// At returns the byte at index i.
func (s AsciiString) At(i int) byte {
	if i < 0 || i >= len(s.b) {
		panic(wrapErr("At", ErrIndexOutOfRange))
	}
	return s.b[i]
}

// TryAt is the non-panicking form of At.
func (s AsciiString) TryAt(i int) (byte, error) {
	if i < 0 || i >= len(s.b) {
		return 0, wrapErr("TryAt", ErrIndexOutOfRange)
	}
	return s.b[i], nil
}

// CodeUnitAt returns the byte at index i widened to a 16-bit code unit.
func (s AsciiString) CodeUnitAt(i int) uint16 {
	return uint16(s.At(i))
}

// Bytes returns the underlying bytes. The caller must not mutate the
// returned slice.
func (s AsciiString) Bytes() []byte { return s.b }

// Hash returns the precomputed case-insensitive ASCII hash.
func (s AsciiString) Hash() uint32 {
	if len(s.b) == 0 {
		return hashSeed // the zero value carries no precomputed hash
	}
	return s.hash
}

// Sub returns the zero-copy sub-view s[start:end]. The result shares
// backing storage with s and has its own hash recomputed over the range.
func (s AsciiString) Sub(start, end int) AsciiString {
	if start < 0 || end > len(s.b) || start > end {
		panic(wrapErr("Sub", ErrIndexOutOfRange))
	}
	sub := s.b[start:end]
	return AsciiString{b: sub, hash: hashCodeASCII(sub)}
}

// Copy returns a deep copy of s, severing storage sharing with its parent.
func (s AsciiString) Copy() AsciiString {
	return New(s.b)
}

// Equal reports byte-exact equality.
func (s AsciiString) Equal(other AsciiString) bool {
	if len(s.b) != len(other.b) {
		return false
	}
	for i := range s.b {
		if s.b[i] != other.b[i] {
			return false
		}
	}
	return true
}

// EqualFold reports ASCII case-insensitive equality.
func (s AsciiString) EqualFold(other AsciiString) bool {
	if len(s.b) != len(other.b) {
		return false
	}
	for i := range s.b {
		if toLowerASCII(s.b[i]) != toLowerASCII(other.b[i]) {
			return false
		}
	}
	return true
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}

// ToLowerASCII returns a new AsciiString with every ASCII uppercase letter
// folded to lowercase.
func (s AsciiString) ToLowerASCII() AsciiString {
	out := make([]byte, len(s.b))
	for i, b := range s.b {
		out[i] = toLowerASCII(b)
	}
	return AsciiString{b: out, hash: hashCodeASCII(out)}
}

// ToUpperASCII returns a new AsciiString with every ASCII lowercase letter
// folded to uppercase.
func (s AsciiString) ToUpperASCII() AsciiString {
	out := make([]byte, len(s.b))
	for i, b := range s.b {
		out[i] = toUpperASCII(b)
	}
	return AsciiString{b: out, hash: hashCodeASCII(out)}
}

// Trim returns a sub-view with leading and trailing bytes <= 0x20 removed.
func (s AsciiString) Trim() AsciiString {
	start, end := 0, len(s.b)
	for start < end && s.b[start] <= ' ' {
		start++
	}
	for end > start && s.b[end-1] <= ' ' {
		end--
	}
	return s.Sub(start, end)
}

// IndexByte returns the index of the first occurrence of c, or -1.
func (s AsciiString) IndexByte(c byte) int {
	for i, b := range s.b {
		if b == c {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the first occurrence of sub, or -1.
func (s AsciiString) IndexOf(sub AsciiString) int {
	n, m := len(s.b), len(sub.b)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s.Sub(i, i+m).Equal(sub) {
			return i
		}
	}
	return -1
}

// Contains reports whether s contains sub as a byte-exact substring.
func (s AsciiString) Contains(sub AsciiString) bool {
	return s.IndexOf(sub) >= 0
}

// RegionMatches reports whether the length-byte region of s starting at
// toffset matches the length-byte region of other starting at ooffset,
// optionally ignoring ASCII case.
func (s AsciiString) RegionMatches(toffset int, other AsciiString, ooffset, length int, ignoreCase bool) bool {
	if toffset < 0 || ooffset < 0 || toffset+length > len(s.b) || ooffset+length > len(other.b) {
		return false
	}
	for i := 0; i < length; i++ {
		a, b := s.b[toffset+i], other.b[ooffset+i]
		if ignoreCase {
			a, b = toLowerASCII(a), toLowerASCII(b)
		}
		if a != b {
			return false
		}
	}
	return true
}

// ForEachByte invokes visitor for each byte in order, stopping early (and
// returning false) if visitor returns false.
func (s AsciiString) ForEachByte(visitor func(index int, b byte) bool) bool {
	for i, b := range s.b {
		if !visitor(i, b) {
			return false
		}
	}
	return true
}

// String returns the native string form of s.
func (s AsciiString) String() string {
	return string(s.b)
}

// ParseBool parses "the first byte as non-zero" (DotNetty/Netty
// CharSequenceValueConverter): empty input is an error, a leading NUL byte (0x00) is
// false, any other leading byte value is true — including the character
// '0' (0x30), which is non-zero as a byte value.
func (s AsciiString) ParseBool() (bool, error) {
	if len(s.b) == 0 {
		return false, wrapErr("ParseBool", ErrEmptyInput)
	}
	return s.b[0] != 0, nil
}

func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 10
	default:
		return -1
	}
}

// ParseInt64 parses the full extent of s as a signed integer in the given
// radix (2-36). Accumulates negatively and negates at the end, mirroring
// the two's-complement MIN-value edge case; overflow is a parse failure.
func (s AsciiString) ParseInt64(radix int) (int64, error) {
	return parseSignedInt(s.b, radix, 64)
}

// ParseInt32 parses s as a 32-bit signed integer ("parse_int").
func (s AsciiString) ParseInt32(radix int) (int32, error) {
	v, err := parseSignedInt(s.b, radix, 32)
	return int32(v), err
}

// ParseInt16 parses s as a 16-bit signed integer ("parse_short").
func (s AsciiString) ParseInt16(radix int) (int16, error) {
	v, err := parseSignedInt(s.b, radix, 16)
	return int16(v), err
}

func parseSignedInt(b []byte, radix, bits int) (int64, error) {
	if radix < 2 || radix > 36 {
		return 0, wrapErr("ParseInt", ErrInvalidRadix)
	}
	if len(b) == 0 {
		return 0, wrapErr("ParseInt", ErrEmptyInput)
	}
	neg := false
	i := 0
	if b[0] == '-' {
		neg = true
		i++
	}
	if i >= len(b) {
		return 0, wrapErr("ParseInt", ErrEmptyInput)
	}
	var acc int64 // accumulated as a negative magnitude, negated at the end
	limit := int64(-1) << (bits - 1)
	for ; i < len(b); i++ {
		d := digitValue(b[i])
		if d < 0 || d >= radix {
			return 0, wrapErr("ParseInt", ErrInvalidDigit)
		}
		if acc < (limit+int64(d))/int64(radix) {
			return 0, wrapErr("ParseInt", ErrOverflow)
		}
		acc = acc*int64(radix) - int64(d)
	}
	if !neg {
		if acc == limit {
			return 0, wrapErr("ParseInt", ErrOverflow)
		}
		acc = -acc
	}
	if bits < 64 {
		upper := int64(1)<<(bits-1) - 1
		lower := -(int64(1) << (bits - 1))
		if acc > upper || acc < lower {
			return 0, wrapErr("ParseInt", ErrOverflow)
		}
	}
	return acc, nil
}

// ParseFloat64 parses s as a double-precision float (invariant-culture
// decimal form).
func (s AsciiString) ParseFloat64() (float64, error) {
	if len(s.b) == 0 {
		return 0, wrapErr("ParseFloat64", ErrEmptyInput)
	}
	v, err := strconv.ParseFloat(string(s.b), 64)
	if err != nil {
		return 0, wrapErr("ParseFloat64", ErrInvalidDigit)
	}
	return v, nil
}

// ParseFloat32 parses s as a single-precision float.
func (s AsciiString) ParseFloat32() (float32, error) {
	v, err := s.ParseFloat64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxFloat32 || v < -math.MaxFloat32 {
		return 0, wrapErr("ParseFloat32", ErrOverflow)
	}
	return float32(v), nil
}
