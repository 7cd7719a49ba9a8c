package header

import (
	"reflect"
	"testing"
)

func TestAddGetAllOrderPreservation(t *testing.T) {
	h := NewHeaders()
	values := []string{"a", "b", "c"}
	for _, v := range values {
		if err := h.Add("Set-Cookie", v); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if got := h.GetAll("Set-Cookie"); !reflect.DeepEqual(got, values) {
		t.Fatalf("GetAll() = %v, want %v", got, values)
	}
	if h.Size() != len(values) {
		t.Fatalf("Size() = %d, want %d", h.Size(), len(values))
	}
}

func TestGetReturnsMostRecent(t *testing.T) {
	h := NewHeaders()
	h.Add("Set-Cookie", "a")
	h.Add("Set-Cookie", "b")
	got, ok := h.Get("Set-Cookie")
	if !ok || got != "b" {
		t.Fatalf("Get() = %q, %v, want %q, true", got, ok, "b")
	}
	if all := h.GetAll("Set-Cookie"); !reflect.DeepEqual(all, []string{"a", "b"}) {
		t.Fatalf("GetAll() = %v, want [a b]", all)
	}
}

func TestCaseInsensitiveLookup(t *testing.T) {
	h := NewHeaders()
	h.Add("Content-Type", "text/plain")
	if _, ok := h.Get("content-type"); !ok {
		t.Fatalf("Get should be case-insensitive on name")
	}
	if _, ok := h.Get("CONTENT-TYPE"); !ok {
		t.Fatalf("Get should be case-insensitive on name")
	}
}

func TestRemoveTrueIffPriorContains(t *testing.T) {
	h := NewHeaders()
	if h.Remove("X-Foo") {
		t.Fatalf("Remove on absent name must return false")
	}
	h.Add("X-Foo", "1")
	if !h.Remove("X-Foo") {
		t.Fatalf("Remove must return true when name was present")
	}
	if h.Remove("X-Foo") {
		t.Fatalf("second Remove must return false")
	}
}

func TestOrderPreservationAcrossNames(t *testing.T) {
	h := NewHeaders()
	h.Add("A", "1")
	h.Add("B", "2")
	h.Add("A", "3")
	var order [][2]string
	h.Each(func(name, value string) bool {
		order = append(order, [2]string{name, value})
		return true
	})
	want := [][2]string{{"A", "1"}, {"B", "2"}, {"A", "3"}}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("Each() order = %v, want %v", order, want)
	}
}

func TestSetReplacesAllValues(t *testing.T) {
	h := NewHeaders()
	h.Add("X", "1")
	h.Add("X", "2")
	h.Set("X", "3")
	if got := h.GetAll("X"); !reflect.DeepEqual(got, []string{"3"}) {
		t.Fatalf("Set should replace all prior values: got %v", got)
	}
}

func TestSetAllFromHeadersPreservesDisjointNames(t *testing.T) {
	a := NewHeaders()
	a.Add("Keep", "k")
	a.Add("Shared", "old")

	b := NewHeaders()
	b.Add("Shared", "new")

	if err := a.SetAllFromHeaders(b); err != nil {
		t.Fatalf("SetAllFromHeaders: %v", err)
	}
	if got, _ := a.Get("Keep"); got != "k" {
		t.Fatalf("Keep should survive, got %q", got)
	}
	if got := a.GetAll("Shared"); !reflect.DeepEqual(got, []string{"new"}) {
		t.Fatalf("Shared should be replaced, got %v", got)
	}
}

func TestAddHeadersRejectsSelfAdd(t *testing.T) {
	h := NewHeaders()
	h.Add("X", "1")
	if err := h.AddHeaders(h); err == nil {
		t.Fatalf("AddHeaders(self) should error")
	}
}

func TestInvalidHeaderName(t *testing.T) {
	h := NewHeaders()
	if err := h.Add("Bad Name", "v"); err == nil {
		t.Fatalf("space in header name should be rejected")
	}
	if err := h.Add("", "v"); err == nil {
		t.Fatalf("empty header name should be rejected")
	}
	for _, c := range []byte{0x00, 0x1F, 0x7F} {
		if err := h.Add(string([]byte{c, 'x'}), "v"); err == nil {
			t.Fatalf("CTL byte %#x in header name should be rejected", c)
		}
	}
}

func TestTypedConvenienceRoundTrip(t *testing.T) {
	h := NewHeaders()
	if err := h.AddInt("X-Count", 42); err != nil {
		t.Fatalf("AddInt: %v", err)
	}
	got, err := h.GetInt("X-Count")
	if err != nil || got != 42 {
		t.Fatalf("GetInt() = %d, %v, want 42, nil", got, err)
	}

	if err := h.AddBool("X-Flag", true); err != nil {
		t.Fatalf("AddBool: %v", err)
	}
	b, err := h.GetBool("X-Flag")
	if err != nil || !b {
		t.Fatalf("GetBool() = %v, %v, want true, nil", b, err)
	}

	if err := h.AddLong("X-Big", 1<<40); err != nil {
		t.Fatalf("AddLong: %v", err)
	}
	l, err := h.GetLong("X-Big")
	if err != nil || l != 1<<40 {
		t.Fatalf("GetLong() = %d, %v, want %d, nil", l, err, int64(1)<<40)
	}
}

func TestHeadersEqualAndHash(t *testing.T) {
	build := func() *Headers {
		h := NewHeaders()
		h.Add("A", "1")
		h.Add("B", "2")
		return h
	}
	a, b := build(), build()
	if !HeadersEqual(a, b) {
		t.Fatalf("headers built identically should be equal")
	}
	if a.HashOf() != b.HashOf() {
		t.Fatalf("headers built identically should hash equally")
	}
	b.Add("A", "3")
	if HeadersEqual(a, b) {
		t.Fatalf("headers should differ once diverged")
	}
}

func TestCombinedHeadersJoinsAndTrims(t *testing.T) {
	c := NewCombinedHeaders()
	c.Add("Accept", " gzip ")
	c.Add("Accept", "deflate")
	got, ok := c.Get("Accept")
	if !ok || got != "gzip, deflate" {
		t.Fatalf("Get() = %q, %v, want %q, true", got, ok, "gzip, deflate")
	}
}
