// Package compress names the compression collaborator seam: a registry
// mapping a Content-Encoding/Accept-Encoding token to a real
// stream-compressor constructor. The core only ever reads and writes the
// token as header text; it never performs the actual streaming transform.
package compress

import (
	"compress/flate"
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Writer wraps a compressor constructor registered under a wire token.
type Writer func(w io.Writer) (io.WriteCloser, error)

// registry maps an Accept-Encoding/Content-Encoding token to its
// constructor. Token spelling follows RFC 9110 §8.4.1 ("gzip", "deflate",
// "br") plus "zstd" (RFC 8878), all lowercase.
var registry = map[string]Writer{
	"gzip": func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriter(w), nil
	},
	"deflate": func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	},
	"br": func(w io.Writer) (io.WriteCloser, error) {
		return brotli.NewWriter(w), nil
	},
	"zstd": func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w)
	},
}

// Lookup returns the constructor registered for token, case-insensitively.
func Lookup(token string) (Writer, bool) {
	w, ok := registry[strings.ToLower(token)]
	return w, ok
}

// Tokens returns every registered token, most-preferred first ("br" and
// "zstd" before the older "gzip"/"deflate").
func Tokens() []string {
	return []string{"br", "zstd", "gzip", "deflate"}
}

// weightedToken is one entry of a parsed Accept-Encoding list.
type weightedToken struct {
	token  string
	weight float64
}

// Negotiate parses an Accept-Encoding header value and returns the
// highest-weighted token this registry supports, preferring registration
// order (Tokens()) to break ties. It returns ok=false when nothing in
// acceptEncoding is both supported and weighted above zero.
func Negotiate(acceptEncoding string) (token string, ok bool) {
	var candidates []weightedToken
	for _, part := range strings.Split(acceptEncoding, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tok, weight := parseWeightedToken(part)
		if _, supported := registry[tok]; !supported {
			continue
		}
		if weight > 0 {
			candidates = append(candidates, weightedToken{tok, weight})
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	preference := make(map[string]int, len(registry))
	for i, t := range Tokens() {
		preference[t] = i
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.weight > best.weight ||
			(c.weight == best.weight && preference[c.token] < preference[best.token]) {
			best = c
		}
	}
	return best.token, true
}

func parseWeightedToken(part string) (token string, weight float64) {
	weight = 1.0
	segments := strings.Split(part, ";")
	token = strings.ToLower(strings.TrimSpace(segments[0]))
	for _, seg := range segments[1:] {
		seg = strings.TrimSpace(seg)
		if q, found := strings.CutPrefix(seg, "q="); found {
			if v, err := strconv.ParseFloat(strings.TrimSpace(q), 64); err == nil {
				weight = v
			}
		}
	}
	return token, weight
}
