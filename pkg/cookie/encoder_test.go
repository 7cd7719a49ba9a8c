package cookie

import (
	"reflect"
	"testing"
	"time"
)

func pinnedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func strPtr(s string) *string { return &s }

func TestStrictEncodeFullCookie(t *testing.T) {
	clock := pinnedClock(time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC))
	enc := NewStrictEncoder(clock)

	c := Cookie{
		Name:   "myCookie",
		Value:  "myValue",
		Domain: strPtr(".adomainsomewhere"),
		Path:   strPtr("/apathsomewhere"),
		Secure: true,
		MaxAge: 50,
	}
	got, err := enc.Encode(c)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "myCookie=myValue; Max-Age=50; Expires=Sat, 01 Jan 2000 00:00:49 GMT; Path=/apathsomewhere; Domain=.adomainsomewhere; Secure"
	if got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
}

func TestStrictDedupKeepsLastOccurrence(t *testing.T) {
	enc := NewStrictEncoder(pinnedClock(time.Unix(0, 0)))
	cookies := []Cookie{
		New("cookie1", "value1"),
		New("cookie2", "value2"),
		New("cookie1", "value3"),
	}
	got, err := enc.EncodeAll(cookies)
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	want := []string{"cookie2=value2", "cookie1=value3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("EncodeAll() = %v, want %v", got, want)
	}
}

func TestLaxEmitsDuplicates(t *testing.T) {
	enc := NewLaxEncoder(pinnedClock(time.Unix(0, 0)))
	cookies := []Cookie{
		New("cookie1", "value1"),
		New("cookie2", "value2"),
		New("cookie1", "value3"),
	}
	got, err := enc.EncodeAll(cookies)
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	want := []string{"cookie1=value1", "cookie2=value2", "cookie1=value3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("EncodeAll() = %v, want %v", got, want)
	}
}

func TestStrictRejectsIllegalName(t *testing.T) {
	enc := NewStrictEncoder(pinnedClock(time.Unix(0, 0)))

	for b := 0; b <= 0x1F; b++ {
		name := string([]byte{byte(b), 'x'})
		if _, err := enc.Encode(New(name, "v")); err == nil {
			t.Fatalf("CTL byte %#x in name should be rejected", b)
		}
	}
	if _, err := enc.Encode(New("\x7Fx", "v")); err == nil {
		t.Fatalf("DEL byte in name should be rejected")
	}

	for _, sep := range []byte("\"(),/:;<=>?@[]\\{} \t") {
		name := "co" + string([]byte{sep}) + "okie"
		if _, err := enc.Encode(New(name, "v")); err == nil {
			t.Fatalf("separator %q in name should be rejected", sep)
		}
	}
}

func TestWrapQuotesValueWithDoubledClosingQuote(t *testing.T) {
	enc := NewStrictEncoder(pinnedClock(time.Unix(0, 0)))
	c := New("name", "value")
	c.Wrap = true
	got, err := enc.Encode(c)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `name="value""`
	if got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
}

func TestUnwrapBalancedAndUnbalanced(t *testing.T) {
	if v, ok := Unwrap(`"value"`); !ok || v != "value" {
		t.Fatalf("Unwrap(balanced) = %q, %v, want %q, true", v, ok, "value")
	}
	if _, ok := Unwrap(`"value`); ok {
		t.Fatalf("Unwrap(unbalanced) should fail")
	}
	if v, ok := Unwrap("value"); !ok || v != "value" {
		t.Fatalf("Unwrap(unquoted) = %q, %v, want %q, true", v, ok, "value")
	}
}
