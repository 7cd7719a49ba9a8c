package ascii

import "encoding/binary"

// Case-insensitive ASCII hash, per spec: masking every byte with 0x1F makes
// 'A' and 'a' (which differ only in bit 0x20) hash identically, so the same
// bucket index serves both a case-sensitive and a case-insensitive lookup.
// Implementors MUST keep these constants and the tail/lane formulas exactly
// as given — the byte sequence a hash is computed over is part of this
// package's wire contract, not an implementation detail.
const (
	hashSeed = uint32(0xC2B2AE35)
	hashC1   = uint32(0x1B873593)
	hashC2   = uint32(0x1B873593)
)

func sanitizeByte(b byte) uint32 {
	return uint32(b) & 0x1F
}

func sanitizeShort(b0, b1 byte) uint32 {
	v := uint32(b0) | uint32(b1)<<8
	return v & 0x1F1F
}

func sanitizeInt(b []byte) uint32 {
	v := binary.LittleEndian.Uint32(b)
	return v & 0x1F1F1F1F
}

// hashLane8 folds one 8-byte lane into the running hash. The high term
// takes the top 4 sanitized bytes of the 8-byte little-endian word, per the
// spec's "8-byte lane" formula.
func hashLane8(b []byte, hash uint32) uint32 {
	v := binary.LittleEndian.Uint64(b)
	lo := uint32(v) & 0x1F1F1F1F
	hi := uint32((v & 0x1F1F1F1F00000000) >> 32)
	return hash*hashC1 + lo*hashC2 + hi
}

// hashCodeASCII computes the case-insensitive ASCII hash of b. Signed
// overflow wraps via uint32 two's-complement arithmetic, matching the
// source algorithm's behavior.
func hashCodeASCII(b []byte) uint32 {
	hash := hashSeed
	n := len(b)
	i := 0
	for n-i >= 8 {
		hash = hashLane8(b[i:i+8], hash)
		i += 8
	}
	tail := b[i:]
	switch len(tail) {
	case 0:
		// hash unchanged
	case 1:
		hash = hash*hashC1 + sanitizeByte(tail[0])
	case 2:
		hash = hash*hashC1 + sanitizeShort(tail[0], tail[1])
	case 3:
		hash = (hash*hashC1+sanitizeByte(tail[0]))*hashC2 + sanitizeShort(tail[1], tail[2])
	case 4:
		hash = hash*hashC1 + sanitizeInt(tail[0:4])
	case 5:
		hash = (hash*hashC1+sanitizeByte(tail[0]))*hashC2 + sanitizeInt(tail[1:5])
	case 6:
		hash = (hash*hashC1+sanitizeShort(tail[0], tail[1]))*hashC2 + sanitizeInt(tail[2:6])
	case 7:
		hash = ((hash*hashC1+sanitizeByte(tail[0]))*hashC2+sanitizeShort(tail[1], tail[2]))*hashC1 + sanitizeInt(tail[3:7])
	}
	return hash
}
