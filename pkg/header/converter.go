package header

import (
	"strconv"

	"github.com/yourusername/httpwire/pkg/ascii"
	"github.com/yourusername/httpwire/pkg/date"
)

// Converter is the ValueConverter<V> contract from spec.md §4.4: bidirectional
// conversion between scalar Go types and a header value type V. Every
// FromX call yields a non-absent V; every ToX call fails with an error on
// malformed or out-of-range input, never silently coerces.
type Converter[V any] interface {
	FromBool(b bool) V
	ToBool(v V) (bool, error)
	FromByte(b byte) V
	ToByte(v V) (byte, error)
	FromChar(c uint16) V
	ToChar(v V) (uint16, error)
	FromShort(i int16) V
	ToShort(v V) (int16, error)
	FromInt(i int32) V
	ToInt(v V) (int32, error)
	FromLong(i int64) V
	ToLong(v V) (int64, error)
	FromFloat(f float32) V
	ToFloat(v V) (float32, error)
	FromDouble(f float64) V
	ToDouble(v V) (float64, error)
	FromTimeMillis(ms int64) V
	ToTimeMillis(v V) (int64, error)
}

// asciiConverter converts between Go scalars and ascii.AsciiString.
type asciiConverter struct {
	codec *date.Codec
}

// AsciiConverter is the singleton Converter[ascii.AsciiString], used by
// Headers' typed convenience methods.
var AsciiConverter Converter[ascii.AsciiString] = &asciiConverter{codec: date.NewCodec()}

func (c *asciiConverter) FromBool(b bool) ascii.AsciiString {
	if b {
		return ascii.New([]byte("true"))
	}
	return ascii.New([]byte("false"))
}

func (c *asciiConverter) ToBool(v ascii.AsciiString) (bool, error) {
	return v.ParseBool()
}

func (c *asciiConverter) FromByte(b byte) ascii.AsciiString {
	return c.FromLong(int64(b))
}

func (c *asciiConverter) ToByte(v ascii.AsciiString) (byte, error) {
	n, err := v.ParseInt64(10)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 255 {
		return 0, &ascii.Error{Op: "ToByte", Err: ascii.ErrOverflow}
	}
	return byte(n), nil
}

func (c *asciiConverter) FromChar(ch uint16) ascii.AsciiString {
	return ascii.Unsafe([]byte{byte(ch)})
}

func (c *asciiConverter) ToChar(v ascii.AsciiString) (uint16, error) {
	if v.IsEmpty() {
		return 0, ascii.ErrEmptyInput
	}
	return v.CodeUnitAt(0), nil
}

func (c *asciiConverter) FromShort(i int16) ascii.AsciiString {
	return c.FromLong(int64(i))
}

func (c *asciiConverter) ToShort(v ascii.AsciiString) (int16, error) {
	return v.ParseInt16(10)
}

func (c *asciiConverter) FromInt(i int32) ascii.AsciiString {
	return c.FromLong(int64(i))
}

func (c *asciiConverter) ToInt(v ascii.AsciiString) (int32, error) {
	return v.ParseInt32(10)
}

func (c *asciiConverter) FromLong(i int64) ascii.AsciiString {
	return ascii.New([]byte(strconv.FormatInt(i, 10)))
}

func (c *asciiConverter) ToLong(v ascii.AsciiString) (int64, error) {
	return v.ParseInt64(10)
}

func (c *asciiConverter) FromFloat(f float32) ascii.AsciiString {
	return ascii.New([]byte(strconv.FormatFloat(float64(f), 'G', -1, 32)))
}

func (c *asciiConverter) ToFloat(v ascii.AsciiString) (float32, error) {
	return v.ParseFloat32()
}

func (c *asciiConverter) FromDouble(f float64) ascii.AsciiString {
	return ascii.New([]byte(strconv.FormatFloat(f, 'G', -1, 64)))
}

func (c *asciiConverter) ToDouble(v ascii.AsciiString) (float64, error) {
	return v.ParseFloat64()
}

func (c *asciiConverter) FromTimeMillis(ms int64) ascii.AsciiString {
	return ascii.New([]byte(c.codec.FormatMillis(ms)))
}

func (c *asciiConverter) ToTimeMillis(v ascii.AsciiString) (int64, error) {
	ms, ok := c.codec.ParseMillis(v.String())
	if !ok {
		return 0, date.ErrMalformedDate
	}
	return ms, nil
}
