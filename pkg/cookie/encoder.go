package cookie

import (
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/httpwire/pkg/date"
)

// Clock returns the current instant. ServerCookieEncoder never calls
// time.Now directly so callers can pin it in tests.
type Clock func() time.Time

// ServerCookieEncoder renders Cookie values into Set-Cookie header lines.
// Strict validates every octet class and, on a batch, deduplicates by
// name (last occurrence wins); Lax skips validation and emits duplicates
// verbatim.
type ServerCookieEncoder struct {
	strict bool
	clock  Clock
	codec  *date.Codec
}

// NewStrictEncoder returns a validating, deduplicating encoder.
func NewStrictEncoder(clock Clock) *ServerCookieEncoder {
	return &ServerCookieEncoder{strict: true, clock: clock, codec: date.NewCodec()}
}

// NewLaxEncoder returns an encoder that performs no validation and emits
// every cookie it is given, duplicates included.
func NewLaxEncoder(clock Clock) *ServerCookieEncoder {
	return &ServerCookieEncoder{strict: false, clock: clock, codec: date.NewCodec()}
}

// Encode renders a single cookie. Strict mode validates octet classes and
// returns an error wrapping ErrInvalidArgument on failure.
func (e *ServerCookieEncoder) Encode(c Cookie) (string, error) {
	if e.strict {
		if err := c.validate(); err != nil {
			return "", err
		}
	}
	return e.encodeOne(c), nil
}

// EncodeAll renders a batch. In strict mode, only the last occurrence of
// each distinct cookie name survives (relative order of survivors is
// preserved); in lax mode every input is emitted in order.
func (e *ServerCookieEncoder) EncodeAll(cookies []Cookie) ([]string, error) {
	if !e.strict {
		out := make([]string, len(cookies))
		for i, c := range cookies {
			out[i] = e.encodeOne(c)
		}
		return out, nil
	}

	lastIndexForName := make(map[string]int, len(cookies))
	for i, c := range cookies {
		if err := c.validate(); err != nil {
			return nil, err
		}
		lastIndexForName[c.Name] = i
	}

	out := make([]string, 0, len(lastIndexForName))
	for i, c := range cookies {
		if lastIndexForName[c.Name] == i {
			out = append(out, e.encodeOne(c))
		}
	}
	return out, nil
}

func (e *ServerCookieEncoder) encodeOne(c Cookie) string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	if c.Wrap {
		wrapValue(&b, c.Value)
	} else {
		b.WriteString(c.Value)
	}

	if c.MaxAge != MaxAgeUnset {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.FormatInt(c.MaxAge, 10))
		b.WriteString("; Expires=")
		expires := e.clock().Add(time.Duration(c.MaxAge) * time.Second)
		b.WriteString(e.codec.FormatTime(expires))
	}
	if c.Path != nil {
		b.WriteString("; Path=")
		b.WriteString(*c.Path)
	}
	if c.Domain != nil {
		b.WriteString("; Domain=")
		b.WriteString(*c.Domain)
	}
	if c.Secure {
		b.WriteString("; Secure")
	}
	if c.HTTPOnly {
		b.WriteString("; HTTPOnly")
	}
	return b.String()
}

// wrapValue wraps value in double quotes. The source this package is
// modeled on emits the closing quote twice; that behavior is preserved
// here verbatim rather than "fixed" (spec's open question on AddQuoted).
func wrapValue(b *strings.Builder, value string) {
	b.WriteByte('"')
	b.WriteString(value)
	b.WriteByte('"')
	b.WriteByte('"')
}

// Unwrap strips a single layer of double-quote wrapping from cs, as a
// decoder would need to before reading a wrapped cookie value. It fails
// when the quotes are unbalanced (an opening quote with no matching
// trailing quote, or vice versa).
func Unwrap(cs string) (string, bool) {
	if len(cs) == 0 || cs[0] != '"' {
		return cs, true
	}
	if len(cs) < 2 || cs[len(cs)-1] != '"' {
		return "", false
	}
	return cs[1 : len(cs)-1], true
}
