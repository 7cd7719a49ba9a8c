package ascii

import "github.com/valyala/bytebufferpool"

// GrowableAsciiBuffer is an amortized-append accumulator for header-line
// construction. It is backed by bytebufferpool.ByteBuffer, whose Write
// already doubles capacity on growth, so this type just adds the ASCII/
// CharSequence-shaped API spec.md's AppendableBuffer calls for.
type GrowableAsciiBuffer struct {
	buf *bytebufferpool.ByteBuffer
}

var pool bytebufferpool.Pool

// NewGrowableAsciiBuffer acquires a buffer from the shared pool.
func NewGrowableAsciiBuffer() *GrowableAsciiBuffer {
	return &GrowableAsciiBuffer{buf: pool.Get()}
}

// Release returns the buffer's storage to the shared pool. The buffer must
// not be used afterward.
func (g *GrowableAsciiBuffer) Release() {
	pool.Put(g.buf)
	g.buf = nil
}

// Len returns the number of bytes currently accumulated.
func (g *GrowableAsciiBuffer) Len() int { return len(g.buf.B) }

// AppendByte appends a single byte.
func (g *GrowableAsciiBuffer) AppendByte(b byte) {
	g.buf.B = append(g.buf.B, b)
}

// AppendCodeUnit appends a 16-bit code unit, narrowed to a byte (ASCII-only
// domain, per package doc).
func (g *GrowableAsciiBuffer) AppendCodeUnit(u uint16) {
	g.AppendByte(byte(u))
}

// AppendString appends a native string's bytes.
func (g *GrowableAsciiBuffer) AppendString(s string) {
	_, _ = g.buf.WriteString(s)
}

// AppendSequence appends every code unit of seq.
func (g *GrowableAsciiBuffer) AppendSequence(seq CharSequence) {
	n := seq.Len()
	for i := 0; i < n; i++ {
		g.AppendCodeUnit(seq.At(i))
	}
}

// AppendAsciiString appends s's raw bytes.
func (g *GrowableAsciiBuffer) AppendAsciiString(s AsciiString) {
	_, _ = g.buf.Write(s.Bytes())
}

// Bytes returns the accumulated bytes. The slice is valid until the next
// Reset or Release.
func (g *GrowableAsciiBuffer) Bytes() []byte { return g.buf.B }

// String renders the accumulated bytes as a native string.
func (g *GrowableAsciiBuffer) String() string { return g.buf.String() }

// ToAsciiString copies the accumulated bytes into a new AsciiString.
func (g *GrowableAsciiBuffer) ToAsciiString() AsciiString { return New(g.buf.B) }

// Reset clears the buffer's contents while preserving its capacity.
func (g *GrowableAsciiBuffer) Reset() { g.buf.Reset() }
