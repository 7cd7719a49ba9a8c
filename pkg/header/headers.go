package header

import "github.com/yourusername/httpwire/pkg/ascii"

// Headers is the ByteString-keyed specialization of Map — the "hot" header
// map spec.md §9 asks implementors to monomorphize rather than leave
// generic. It owns the RFC 7230 name validator, the case-insensitive name
// hasher, and the AsciiString value converter.
type Headers struct {
	m    *Map[asciiString, asciiString]
	conv Converter[asciiString]
}

// NewHeaders constructs an empty Headers with the default bucket sizing
// hint (16 names is a generous estimate for a typical request/response).
func NewHeaders() *Headers {
	return NewHeadersSized(16)
}

// NewHeadersSized constructs an empty Headers, clamping sizeHint per
// Map.NewMap's bucket-sizing rule.
func NewHeadersSized(sizeHint int) *Headers {
	return &Headers{
		m:    NewMap[asciiString, asciiString](sizeHint, AsciiCaseInsensitive, AsciiCaseSensitive, HeaderNameValidator),
		conv: AsciiConverter,
	}
}

func key(name string) asciiString { return ascii.FromString(name) }

// Add appends (name, value). See Map.Add.
func (h *Headers) Add(name, value string) error {
	return h.m.Add(key(name), ascii.FromString(value))
}

// AddBytes is Add taking raw byte slices, avoiding an intermediate string
// allocation on the value.
func (h *Headers) AddBytes(name string, value []byte) error {
	return h.m.Add(key(name), ascii.New(value))
}

// AddAscii adds a pre-built AsciiString value without recopying it.
func (h *Headers) AddAscii(name string, value asciiString) error {
	return h.m.Add(key(name), value)
}

// AddValues adds every value in values under name, hashing name once.
func (h *Headers) AddValues(name string, values []string) error {
	raw := make([]asciiString, len(values))
	for i, v := range values {
		raw[i] = ascii.FromString(v)
	}
	return h.m.AddAll(key(name), raw)
}

// AddHeaders copies every entry from other into h.
func (h *Headers) AddHeaders(other *Headers) error {
	return h.m.AddMap(other.m)
}

// Get returns the most recently added value for name.
func (h *Headers) Get(name string) (string, bool) {
	v, ok := h.m.Get(key(name))
	if !ok {
		return "", false
	}
	return v.String(), true
}

// GetAscii is Get without converting the result to a native string.
func (h *Headers) GetAscii(name string) (asciiString, bool) {
	return h.m.Get(key(name))
}

// GetAll returns every value stored under name, in insertion order.
func (h *Headers) GetAll(name string) []string {
	raw := h.m.GetAll(key(name))
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = v.String()
	}
	return out
}

// Contains reports whether name has any value.
func (h *Headers) Contains(name string) bool {
	return h.m.Contains(key(name))
}

// ContainsValue reports whether (name, value) is present (byte-exact value
// comparison).
func (h *Headers) ContainsValue(name, value string) bool {
	return h.m.ContainsValue(key(name), ascii.FromString(value), AsciiCaseSensitive)
}

// Set removes every existing value under name, then adds one.
func (h *Headers) Set(name, value string) error {
	return h.m.Set(key(name), ascii.FromString(value))
}

// SetValues removes every existing value under name, then adds each of
// values in order.
func (h *Headers) SetValues(name string, values []string) error {
	raw := make([]asciiString, len(values))
	for i, v := range values {
		raw[i] = ascii.FromString(v)
	}
	return h.m.SetAll(key(name), raw)
}

// SetHeaders clears h, then copies every entry from other.
func (h *Headers) SetHeaders(other *Headers) error {
	return h.m.SetMap(other.m)
}

// SetAllFromHeaders removes, from h, every name also present in other,
// then copies other's entries in.
func (h *Headers) SetAllFromHeaders(other *Headers) error {
	return h.m.SetAllFromMap(other.m)
}

// Remove deletes every value under name. Returns whether anything was
// removed.
func (h *Headers) Remove(name string) bool {
	return h.m.Remove(key(name))
}

// GetAndRemove returns the value Get would have returned, then removes
// every entry under name.
func (h *Headers) GetAndRemove(name string) (string, bool) {
	v, ok := h.m.GetAndRemove(key(name))
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Clear empties h.
func (h *Headers) Clear() { h.m.Clear() }

// Size returns the total number of (name, value) pairs.
func (h *Headers) Size() int { return h.m.Size() }

// IsEmpty reports whether Size() == 0.
func (h *Headers) IsEmpty() bool { return h.m.IsEmpty() }

// Names returns every distinct header name, in first-appearance order.
func (h *Headers) Names() []string {
	raw := h.m.Names()
	out := make([]string, len(raw))
	for i, n := range raw {
		out[i] = n.String()
	}
	return out
}

// Each visits every (name, value) pair in exact insertion order.
func (h *Headers) Each(visit func(name, value string) bool) {
	h.m.Each(func(n, v asciiString) bool {
		return visit(n.String(), v.String())
	})
}

func (h *Headers) notFound(op, name string) error {
	return &Error{Op: op, Name: name, Err: ErrValueAbsent}
}

// --- typed convenience methods, thin wrappers over Converter[asciiString] ---

func (h *Headers) AddInt(name string, v int32) error {
	return h.m.Add(key(name), h.conv.FromInt(v))
}
func (h *Headers) GetInt(name string) (int32, error) {
	raw, ok := h.m.Get(key(name))
	if !ok {
		return 0, h.notFound("GetInt", name)
	}
	return h.conv.ToInt(raw)
}
func (h *Headers) ContainsInt(name string, v int32) bool {
	return h.m.ContainsValue(key(name), h.conv.FromInt(v), AsciiCaseSensitive)
}
func (h *Headers) SetInt(name string, v int32) error {
	return h.m.Set(key(name), h.conv.FromInt(v))
}
func (h *Headers) GetAndRemoveInt(name string) (int32, error) {
	raw, ok := h.m.GetAndRemove(key(name))
	if !ok {
		return 0, h.notFound("GetAndRemoveInt", name)
	}
	return h.conv.ToInt(raw)
}

func (h *Headers) AddLong(name string, v int64) error {
	return h.m.Add(key(name), h.conv.FromLong(v))
}
func (h *Headers) GetLong(name string) (int64, error) {
	raw, ok := h.m.Get(key(name))
	if !ok {
		return 0, h.notFound("GetLong", name)
	}
	return h.conv.ToLong(raw)
}
func (h *Headers) ContainsLong(name string, v int64) bool {
	return h.m.ContainsValue(key(name), h.conv.FromLong(v), AsciiCaseSensitive)
}
func (h *Headers) SetLong(name string, v int64) error {
	return h.m.Set(key(name), h.conv.FromLong(v))
}
func (h *Headers) GetAndRemoveLong(name string) (int64, error) {
	raw, ok := h.m.GetAndRemove(key(name))
	if !ok {
		return 0, h.notFound("GetAndRemoveLong", name)
	}
	return h.conv.ToLong(raw)
}

func (h *Headers) AddShort(name string, v int16) error {
	return h.m.Add(key(name), h.conv.FromShort(v))
}
func (h *Headers) GetShort(name string) (int16, error) {
	raw, ok := h.m.Get(key(name))
	if !ok {
		return 0, h.notFound("GetShort", name)
	}
	return h.conv.ToShort(raw)
}
func (h *Headers) ContainsShort(name string, v int16) bool {
	return h.m.ContainsValue(key(name), h.conv.FromShort(v), AsciiCaseSensitive)
}
func (h *Headers) SetShort(name string, v int16) error {
	return h.m.Set(key(name), h.conv.FromShort(v))
}
func (h *Headers) GetAndRemoveShort(name string) (int16, error) {
	raw, ok := h.m.GetAndRemove(key(name))
	if !ok {
		return 0, h.notFound("GetAndRemoveShort", name)
	}
	return h.conv.ToShort(raw)
}

func (h *Headers) AddByte(name string, v byte) error {
	return h.m.Add(key(name), h.conv.FromByte(v))
}
func (h *Headers) GetByte(name string) (byte, error) {
	raw, ok := h.m.Get(key(name))
	if !ok {
		return 0, h.notFound("GetByte", name)
	}
	return h.conv.ToByte(raw)
}
func (h *Headers) ContainsByte(name string, v byte) bool {
	return h.m.ContainsValue(key(name), h.conv.FromByte(v), AsciiCaseSensitive)
}
func (h *Headers) SetByte(name string, v byte) error {
	return h.m.Set(key(name), h.conv.FromByte(v))
}
func (h *Headers) GetAndRemoveByte(name string) (byte, error) {
	raw, ok := h.m.GetAndRemove(key(name))
	if !ok {
		return 0, h.notFound("GetAndRemoveByte", name)
	}
	return h.conv.ToByte(raw)
}

func (h *Headers) AddBool(name string, v bool) error {
	return h.m.Add(key(name), h.conv.FromBool(v))
}
func (h *Headers) GetBool(name string) (bool, error) {
	raw, ok := h.m.Get(key(name))
	if !ok {
		return false, h.notFound("GetBool", name)
	}
	return h.conv.ToBool(raw)
}
func (h *Headers) ContainsBool(name string, v bool) bool {
	return h.m.ContainsValue(key(name), h.conv.FromBool(v), AsciiCaseSensitive)
}
func (h *Headers) SetBool(name string, v bool) error {
	return h.m.Set(key(name), h.conv.FromBool(v))
}
func (h *Headers) GetAndRemoveBool(name string) (bool, error) {
	raw, ok := h.m.GetAndRemove(key(name))
	if !ok {
		return false, h.notFound("GetAndRemoveBool", name)
	}
	return h.conv.ToBool(raw)
}

func (h *Headers) AddFloat(name string, v float32) error {
	return h.m.Add(key(name), h.conv.FromFloat(v))
}
func (h *Headers) GetFloat(name string) (float32, error) {
	raw, ok := h.m.Get(key(name))
	if !ok {
		return 0, h.notFound("GetFloat", name)
	}
	return h.conv.ToFloat(raw)
}
func (h *Headers) ContainsFloat(name string, v float32) bool {
	return h.m.ContainsValue(key(name), h.conv.FromFloat(v), AsciiCaseSensitive)
}
func (h *Headers) SetFloat(name string, v float32) error {
	return h.m.Set(key(name), h.conv.FromFloat(v))
}
func (h *Headers) GetAndRemoveFloat(name string) (float32, error) {
	raw, ok := h.m.GetAndRemove(key(name))
	if !ok {
		return 0, h.notFound("GetAndRemoveFloat", name)
	}
	return h.conv.ToFloat(raw)
}

func (h *Headers) AddDouble(name string, v float64) error {
	return h.m.Add(key(name), h.conv.FromDouble(v))
}
func (h *Headers) GetDouble(name string) (float64, error) {
	raw, ok := h.m.Get(key(name))
	if !ok {
		return 0, h.notFound("GetDouble", name)
	}
	return h.conv.ToDouble(raw)
}
func (h *Headers) ContainsDouble(name string, v float64) bool {
	return h.m.ContainsValue(key(name), h.conv.FromDouble(v), AsciiCaseSensitive)
}
func (h *Headers) SetDouble(name string, v float64) error {
	return h.m.Set(key(name), h.conv.FromDouble(v))
}
func (h *Headers) GetAndRemoveDouble(name string) (float64, error) {
	raw, ok := h.m.GetAndRemove(key(name))
	if !ok {
		return 0, h.notFound("GetAndRemoveDouble", name)
	}
	return h.conv.ToDouble(raw)
}

// AddTimeMillis adds name with the HTTP-date formatting of ms
// (milliseconds since the Unix epoch).
func (h *Headers) AddTimeMillis(name string, ms int64) error {
	return h.m.Add(key(name), h.conv.FromTimeMillis(ms))
}

// GetTimeMillis parses name's value as an HTTP-date, returning milliseconds
// since the Unix epoch.
func (h *Headers) GetTimeMillis(name string) (int64, error) {
	raw, ok := h.m.Get(key(name))
	if !ok {
		return 0, h.notFound("GetTimeMillis", name)
	}
	return h.conv.ToTimeMillis(raw)
}
func (h *Headers) SetTimeMillis(name string, ms int64) error {
	return h.m.Set(key(name), h.conv.FromTimeMillis(ms))
}
func (h *Headers) GetAndRemoveTimeMillis(name string) (int64, error) {
	raw, ok := h.m.GetAndRemove(key(name))
	if !ok {
		return 0, h.notFound("GetAndRemoveTimeMillis", name)
	}
	return h.conv.ToTimeMillis(raw)
}

// HeadersEqual reports whether h and other have the same names with equal
// ordered per-name value lists (spec.md §4.3's HeaderMap equality).
func HeadersEqual(h, other *Headers) bool {
	return Equal[asciiString, asciiString](h.m, other.m)
}

// HashOf computes h's map-level hash (spec.md §4.3).
func (h *Headers) HashOf() uint32 { return HashOf[asciiString, asciiString](h.m) }
