package ascii

import "testing"

func TestNewAndEqual(t *testing.T) {
	s := New([]byte("Set-Cookie"))
	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}
	if !s.Equal(New([]byte("Set-Cookie"))) {
		t.Fatalf("Equal() should hold for identical bytes")
	}
	if s.Equal(New([]byte("set-cookie"))) {
		t.Fatalf("Equal() must be byte-exact, not case-insensitive")
	}
	if !s.EqualFold(New([]byte("set-cookie"))) {
		t.Fatalf("EqualFold() should ignore ASCII case")
	}
}

func TestHashCaseInsensitive(t *testing.T) {
	upper := New([]byte("CONTENT-TYPE"))
	lower := New([]byte("content-type"))
	mixed := New([]byte("Content-Type"))
	if upper.Hash() != lower.Hash() || lower.Hash() != mixed.Hash() {
		t.Fatalf("hash must be case-insensitive: %x %x %x", upper.Hash(), lower.Hash(), mixed.Hash())
	}
}

func TestHashMatchesUpperLower(t *testing.T) {
	s := New([]byte("X-Request-Id"))
	if s.Hash() != s.ToUpperASCII().Hash() || s.Hash() != s.ToLowerASCII().Hash() {
		t.Fatalf("hash(s) must equal hash(upper(s)) and hash(lower(s))")
	}
}

func TestHashStableForSameBytes(t *testing.T) {
	b := []byte("Accept-Encoding")
	if New(b).Hash() != New(b).Hash() {
		t.Fatalf("hash of identical bytes must be stable")
	}
}

func TestSubZeroCopy(t *testing.T) {
	s := New([]byte("application/json"))
	sub := s.Sub(0, 11)
	if sub.String() != "application" {
		t.Fatalf("Sub() = %q, want %q", sub.String(), "application")
	}
	if &sub.Bytes()[0] != &s.Bytes()[0] {
		t.Fatalf("Sub() should share backing storage with its parent")
	}
}

func TestTrim(t *testing.T) {
	s := New([]byte("  value  "))
	if got := s.Trim().String(); got != "value" {
		t.Fatalf("Trim() = %q, want %q", got, "value")
	}
}

func TestIndexOfAndContains(t *testing.T) {
	s := New([]byte("max-age=50; path=/"))
	needle := New([]byte("path"))
	if idx := s.IndexOf(needle); idx != 12 {
		t.Fatalf("IndexOf() = %d, want 12", idx)
	}
	if !s.Contains(needle) {
		t.Fatalf("Contains() should find %q in %q", needle.String(), s.String())
	}
	if s.Contains(New([]byte("nope"))) {
		t.Fatalf("Contains() should not find absent substring")
	}
}

func TestRegionMatches(t *testing.T) {
	a := New([]byte("Content-Length"))
	b := New([]byte("content-length"))
	if !a.RegionMatches(0, b, 0, a.Len(), true) {
		t.Fatalf("RegionMatches(ignoreCase=true) should match")
	}
	if a.RegionMatches(0, b, 0, a.Len(), false) {
		t.Fatalf("RegionMatches(ignoreCase=false) should not match")
	}
}

func TestParseBool(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"0", true}, // byte value '0' (0x30) is non-zero; only a leading NUL is false
		{"true", true},
		{"\x00", false},
	}
	for _, c := range cases {
		got, err := New([]byte(c.in)).ParseBool()
		if err != nil {
			t.Fatalf("ParseBool(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseBool(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	if _, err := Empty.ParseBool(); err == nil {
		t.Fatalf("ParseBool of empty input should error")
	}
}

func TestParseInt64(t *testing.T) {
	v, err := New([]byte("50")).ParseInt64(10)
	if err != nil || v != 50 {
		t.Fatalf("ParseInt64(50) = %d, %v", v, err)
	}
	v, err = New([]byte("-50")).ParseInt64(10)
	if err != nil || v != -50 {
		t.Fatalf("ParseInt64(-50) = %d, %v", v, err)
	}
	if _, err := New([]byte("")).ParseInt64(10); err == nil {
		t.Fatalf("ParseInt64(\"\") should error")
	}
	if _, err := New([]byte("12x")).ParseInt64(10); err == nil {
		t.Fatalf("ParseInt64(\"12x\") should error on non-digit")
	}
	if _, err := New([]byte("99999999999999999999")).ParseInt64(10); err == nil {
		t.Fatalf("ParseInt64 should reject overflow")
	}
	if _, err := New([]byte("1")).ParseInt64(1); err == nil {
		t.Fatalf("ParseInt64 should reject radix < 2")
	}
	v, err = New([]byte("ff")).ParseInt64(16)
	if err != nil || v != 255 {
		t.Fatalf("ParseInt64(ff, 16) = %d, %v", v, err)
	}
}

func TestParseFloat64(t *testing.T) {
	v, err := New([]byte("3.14")).ParseFloat64()
	if err != nil || v != 3.14 {
		t.Fatalf("ParseFloat64(3.14) = %v, %v", v, err)
	}
}

func TestForEachByteEarlyTermination(t *testing.T) {
	s := New([]byte("abcdef"))
	var visited []byte
	s.ForEachByte(func(i int, b byte) bool {
		visited = append(visited, b)
		return b != 'c'
	})
	if string(visited) != "abc" {
		t.Fatalf("ForEachByte did not stop early: %q", visited)
	}
}
