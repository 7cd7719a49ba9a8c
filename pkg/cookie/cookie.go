package cookie

import "math"

// MaxAgeUnset is the MaxAge sentinel meaning "attribute unset". 0 is a valid,
// distinct max-age (an immediate-expiry delete cookie), so this must not
// collapse into an optional over non-negative integers (spec §9's
// "max_age sentinel" decision). Pinned to math.MinInt64 explicitly rather
// than a bit-shift expression, so it stays I64_MIN on every platform width.
const MaxAgeUnset int64 = math.MinInt64

// Cookie is a single name/value pair plus the optional Set-Cookie
// attributes. Domain and Path are pointers so "absent" is distinguishable
// from "present but empty".
type Cookie struct {
	Name     string
	Value    string
	Wrap     bool
	Domain   *string
	Path     *string
	MaxAge   int64
	Secure   bool
	HTTPOnly bool
}

// New returns a Cookie with MaxAge unset (MaxAgeUnset) and no attributes.
func New(name, value string) Cookie {
	return Cookie{Name: name, Value: value, MaxAge: MaxAgeUnset}
}

func (c Cookie) validate() error {
	if !validOctets(c.Name, nameTable) {
		return invalidArg("name", c.Name)
	}
	if !validOctets(c.Value, valueTable) {
		return invalidArg("value", c.Value)
	}
	if c.Domain != nil && !validOctets(*c.Domain, attributeValueTable) {
		return invalidArg("domain", *c.Domain)
	}
	if c.Path != nil && !validOctets(*c.Path, attributeValueTable) {
		return invalidArg("path", *c.Path)
	}
	return nil
}
