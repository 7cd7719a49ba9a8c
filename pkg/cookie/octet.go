// Package cookie implements a strict/lax RFC 6265 Set-Cookie encoder, built
// on top of the date package rather than net/http's cookie jar.
package cookie

// octetTable is a 128-bit bitmap over the low 7 bits of a byte, used to
// validate cookie name, value, and attribute-value octets without a
// per-call switch statement.
type octetTable [2]uint64

func (t octetTable) allows(b byte) bool {
	if b >= 128 {
		return false
	}
	return t[b/64]&(1<<(b%64)) != 0
}

func rangeTable(lo, hi byte, exclude string) octetTable {
	var t octetTable
	for b := int(lo); b <= int(hi); b++ {
		allowed := true
		for i := 0; i < len(exclude); i++ {
			if byte(b) == exclude[i] {
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

// nameTable is the cookie-name class: printable ASCII 0x20-0x7E minus the
// RFC 7230 separators and space/HT (spec §4.6's "name (token)" class).
var nameTable = rangeTable(0x20, 0x7E, "\"(),/:;<=>?@[]\\{} \t")

// valueTable is the RFC 6265 cookie-octet class: a single run of bytes
// with four carve-outs for '"', ',', ';', '\\'.
var valueTable = buildValueTable()

func buildValueTable() octetTable {
	var t octetTable
	add := func(lo, hi int) {
		for b := lo; b <= hi; b++ {
			t[b/64] |= 1 << (b % 64)
		}
	}
	add(0x21, 0x21)
	add(0x23, 0x2B)
	add(0x2D, 0x3A)
	add(0x3C, 0x5B)
	add(0x5D, 0x7E)
	return t
}

// attributeValueTable is the cookie-av class: printable ASCII 0x20-0x7E
// minus ';'.
var attributeValueTable = rangeTable(0x20, 0x7E, ";")

func validOctets(s string, t octetTable) bool {
	for i := 0; i < len(s); i++ {
		if !t.allows(s[i]) {
			return false
		}
	}
	return true
}
