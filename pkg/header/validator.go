package header

import "github.com/yourusername/httpwire/pkg/ascii"

// tokenTable is a 128-bit (two uint64 words) bitmap of the RFC 7230 `token`
// production: printable ASCII 0x21-0x7E minus the separator characters
// `"(),/:;<=>?@[\]{}` and space/HT. Header names and cookie names both use
// this class (spec.md §4.6 names it "cookie-name (token)").
type octetTable [2]uint64

func (t octetTable) allows(b byte) bool {
	if b >= 128 {
		return false
	}
	word := t[b/64]
	return word&(1<<(b%64)) != 0
}

func buildTokenTable() octetTable {
	const separators = "\"(),/:;<=>?@[]\\{} \t"
	var t octetTable
	for b := 0x21; b <= 0x7E; b++ {
		allowed := true
		for i := 0; i < len(separators); i++ {
			if byte(b) == separators[i] {
				allowed = false
				break
			}
		}
		if allowed {
			t[b/64] |= 1 << (b % 64)
		}
	}
	return t
}

var tokenTable = buildTokenTable()

// headerNameValidator rejects an empty name, a name containing a CTL
// character (0x00-0x1F, 0x7F), or a name containing an RFC 7230 separator.
type headerNameValidator struct{}

func (headerNameValidator) Validate(name asciiString) error {
	if name.Len() == 0 {
		return wrapNameErr("Validate", "", ErrNameRequired)
	}
	ok := name.ForEachByte(func(_ int, b byte) bool {
		return tokenTable.allows(b)
	})
	if !ok {
		return wrapNameErr("Validate", name.String(), ErrInvalidName)
	}
	return nil
}

// HeaderNameValidator is the singleton RFC 7230 token validator for header
// names.
var HeaderNameValidator Validator[ascii.AsciiString] = headerNameValidator{}

func wrapNameErr(op, name string, err error) error {
	return &Error{Op: op, Name: name, Err: err}
}
