// Package date implements DateCodec: a parser/formatter for the HTTP-date
// grammar (RFC 7231 §7.1.1.1's preferred IMF-fixdate form), with a lenient
// parser that tolerates the historical obs-date forms and token reordering
// real servers still send.
//
// Per spec.md §9's redesign flag, the parser keeps no package-level or
// thread-local mutable state: each call allocates its own small scratch
// struct on the stack (or heap, if it escapes — Go's escape analysis
// decides, not this package), rather than pooling a per-thread tokenizer.
package date

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedDate is returned when input fails tokenization, shape
// classification, or range validation.
var ErrMalformedDate = errors.New("malformed HTTP-date")

// Error wraps ErrMalformedDate (or another sentinel) with the failing
// input, for callers that want more than a boolean.
type Error struct {
	Input string
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("date: %q: %v", e.Input, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// maxInputLen bounds parse input; longer strings fail fast as malformed.
const maxInputLen = 64

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Codec is the thread-safe, stateless HTTP-date parser/formatter. It has no
// fields, so its zero value is as usable as one from NewCodec. Codec never
// reads the clock: callers (e.g. the cookie encoder, whose Clock is
// injectable) pass in the instant to format.
type Codec struct{}

// NewCodec returns a ready-to-use Codec. Codec carries no state, so callers
// may share a single instance across goroutines, or construct one per call
// — both are equivalent and equally cheap.
func NewCodec() *Codec { return &Codec{} }

// FormatTime renders t (converted to UTC) in the RFC 7231 §7.1.1.1
// preferred form: "EEE, dd MMM yyyy HH:mm:ss GMT", exactly 29 bytes.
func (c *Codec) FormatTime(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%s, %02d %s %04d %02d:%02d:%02d GMT",
		weekdayNames[int(u.Weekday())],
		u.Day(),
		monthNames[int(u.Month())-1],
		u.Year(),
		u.Hour(), u.Minute(), u.Second(),
	)
}

// FormatMillis is FormatTime for a Unix-epoch-milliseconds timestamp.
func (c *Codec) FormatMillis(ms int64) string {
	return c.FormatTime(time.UnixMilli(ms).UTC())
}

// dateComponents accumulates the four token categories spec.md §4.5
// requires before a parse can succeed. This is the "~16 words" of scratch
// state the redesign flag asks to keep off thread-local storage: it lives
// on the call stack of ParseTime, not in any shared slot.
type dateComponents struct {
	hour, min, sec       int
	day                  int
	month                int // 1-12
	year                 int
	haveTime, haveDay    bool
	haveMonth, haveYear  bool
}

func isDelimiter(b byte) bool {
	switch {
	case b == '\t' || b == ' ':
		return true
	case b >= 0x21 && b <= 0x2F:
		return true
	case b >= 0x3B && b <= 0x40:
		return true
	case b >= 0x5B && b <= 0x60:
		return true
	case b >= 0x7B && b <= 0x7E:
		return true
	default:
		return false
	}
}

func tokenize(s string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(s); i++ {
		if isDelimiter(s[i]) {
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

func isAllDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func atoiUnchecked(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// tryTime classifies tok as a "time" token: 5-8 chars, digits separated by
// exactly two colons, parsed as H[H]:M[M]:S[S].
func tryTime(tok string) (hour, min, sec int, ok bool) {
	if len(tok) < 5 || len(tok) > 8 {
		return 0, 0, 0, false
	}
	parts := strings.Split(tok, ":")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	for _, p := range parts {
		if len(p) == 0 || len(p) > 2 || !isAllDigits(p) {
			return 0, 0, 0, false
		}
	}
	return atoiUnchecked(parts[0]), atoiUnchecked(parts[1]), atoiUnchecked(parts[2]), true
}

func monthIndex(tok string) (int, bool) {
	if len(tok) != 3 {
		return 0, false
	}
	for i, name := range monthNames {
		if strings.EqualFold(tok, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// parseComponents tokenizes s and fills dateComponents per spec.md §4.5's
// shape-based classification. A 2-digit numeric token is ambiguous between
// day-of-month and year by shape alone; the ambiguity is resolved by fill
// order: it satisfies day-of-month first if that slot is still open,
// otherwise year.
func parseComponents(s string) (dateComponents, bool) {
	if len(s) > maxInputLen {
		return dateComponents{}, false
	}
	var c dateComponents
	for _, tok := range tokenize(s) {
		if !c.haveTime {
			if h, m, sec, ok := tryTime(tok); ok {
				c.hour, c.min, c.sec = h, m, sec
				c.haveTime = true
				continue
			}
		}
		if !c.haveMonth {
			if idx, ok := monthIndex(tok); ok {
				c.month = idx
				c.haveMonth = true
				continue
			}
		}
		switch {
		case (len(tok) == 1 || len(tok) == 2) && isAllDigits(tok):
			if !c.haveDay {
				c.day = atoiUnchecked(tok)
				c.haveDay = true
			} else if !c.haveYear {
				c.year = mapTwoDigitYear(atoiUnchecked(tok))
				c.haveYear = true
			}
		case len(tok) == 4 && isAllDigits(tok):
			if !c.haveYear {
				y := atoiUnchecked(tok)
				c.year = y
				c.haveYear = true
			}
		}
	}
	if !(c.haveTime && c.haveDay && c.haveMonth && c.haveYear) {
		return c, false
	}
	if c.day < 1 || c.day > 31 {
		return c, false
	}
	if c.hour > 23 || c.min > 59 || c.sec > 59 {
		return c, false
	}
	if c.year < 1601 {
		return c, false
	}
	return c, true
}

func mapTwoDigitYear(y int) int {
	if y <= 69 {
		return 2000 + y
	}
	return 1900 + y
}

// ParseTime lenently parses s as an HTTP-date (preferred or obs-date form,
// in any token order) and returns the corresponding UTC time.
func (c *Codec) ParseTime(s string) (time.Time, bool) {
	comp, ok := parseComponents(s)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(comp.year, time.Month(comp.month), comp.day, comp.hour, comp.min, comp.sec, 0, time.UTC), true
}

// ParseMillis is ParseTime, returning milliseconds since the Unix epoch.
func (c *Codec) ParseMillis(s string) (int64, bool) {
	t, ok := c.ParseTime(s)
	if !ok {
		return 0, false
	}
	return t.UnixMilli(), true
}
