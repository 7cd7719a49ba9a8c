package header

import (
	"strings"

	"github.com/yourusername/httpwire/pkg/ascii"
)

// CombinedHeaders stores at most one CSV-joined value per name: Add/Set
// trim OWS (HT, SP) from each input segment and join existing values with
// ", " before storing, rather than keeping a separate entry per value. Name
// handling (case-insensitive lookup, RFC 7230 validation) matches Headers;
// it offers a smaller method set, and its Names order differs as noted on
// Names.
type CombinedHeaders struct {
	m *Map[asciiString, asciiString]
}

// NewCombinedHeaders constructs an empty CombinedHeaders.
func NewCombinedHeaders() *CombinedHeaders {
	return &CombinedHeaders{
		m: NewMap[asciiString, asciiString](16, AsciiCaseInsensitive, AsciiCaseSensitive, HeaderNameValidator),
	}
}

func trimOWS(s string) string {
	return strings.Trim(s, " \t")
}

// Add appends value to name's combined CSV value (creating it if absent).
func (c *CombinedHeaders) Add(name, value string) error {
	trimmed := trimOWS(value)
	k := key(name)
	existing, ok := c.m.Get(k)
	if !ok {
		return c.m.Add(k, ascii.FromString(trimmed))
	}
	joined := existing.String() + ", " + trimmed
	return c.m.Set(k, ascii.FromString(joined))
}

// Set replaces name's combined value outright with the OWS-trimmed value.
func (c *CombinedHeaders) Set(name, value string) error {
	return c.m.Set(key(name), ascii.FromString(trimOWS(value)))
}

// Get returns name's single combined CSV value.
func (c *CombinedHeaders) Get(name string) (string, bool) {
	v, ok := c.m.Get(key(name))
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Contains reports whether name has a stored value.
func (c *CombinedHeaders) Contains(name string) bool {
	return c.m.Contains(key(name))
}

// Remove deletes name's value.
func (c *CombinedHeaders) Remove(name string) bool {
	return c.m.Remove(key(name))
}

// Names returns every distinct name. Add to a name that already has a value
// re-stores it at the end, so names are ordered by their latest Add or Set,
// not by first appearance.
func (c *CombinedHeaders) Names() []string {
	raw := c.m.Names()
	out := make([]string, len(raw))
	for i, n := range raw {
		out[i] = n.String()
	}
	return out
}

// Size returns the number of distinct names stored.
func (c *CombinedHeaders) Size() int { return c.m.Size() }

// Clear empties c.
func (c *CombinedHeaders) Clear() { c.m.Clear() }
