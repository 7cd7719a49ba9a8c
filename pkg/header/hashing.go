package header

import "github.com/yourusername/httpwire/pkg/ascii"

// Hasher is the HashingStrategy<T> contract spec.md names: a hash plus an
// equality relation consistent with it. Implementations are package-level
// singletons so Map.AddMap's reference-identity fast path (spec §4.3,
// "fast path when hasher and validator are reference-identical") can be
// checked with a plain interface comparison.
type Hasher[T any] interface {
	HashOf(v T) uint32
	Equal(a, b T) bool
}

// Validator validates a key at the point of insertion.
type Validator[K any] interface {
	Validate(k K) error
}

// asciiCaseInsensitiveHasher hashes and compares AsciiString values
// case-insensitively. Because the underlying ASCII hash (pkg/ascii) already
// folds case into its bit pattern, hashing is identical to the
// case-sensitive hasher below; only Equal differs.
type asciiCaseInsensitiveHasher struct{}

func (asciiCaseInsensitiveHasher) HashOf(v ascii.AsciiString) uint32 { return v.Hash() }
func (asciiCaseInsensitiveHasher) Equal(a, b ascii.AsciiString) bool { return a.EqualFold(b) }

// AsciiCaseInsensitive is the singleton case-insensitive AsciiString
// hasher, used for header *names* per RFC 7230.
var AsciiCaseInsensitive Hasher[ascii.AsciiString] = asciiCaseInsensitiveHasher{}

// asciiCaseSensitiveHasher hashes and compares AsciiString values exactly.
type asciiCaseSensitiveHasher struct{}

func (asciiCaseSensitiveHasher) HashOf(v ascii.AsciiString) uint32 { return v.Hash() }
func (asciiCaseSensitiveHasher) Equal(a, b ascii.AsciiString) bool { return a.Equal(b) }

// AsciiCaseSensitive is the singleton case-sensitive AsciiString hasher,
// used for header *values* (value equality is byte-exact per spec.md §8.7).
var AsciiCaseSensitive Hasher[ascii.AsciiString] = asciiCaseSensitiveHasher{}

// noopValidator accepts every key, for maps that don't need RFC 7230 token
// validation (Headers and CombinedHeaders both use HeaderNameValidator).
type noopValidator struct{}

func (noopValidator) Validate(ascii.AsciiString) error { return nil }

// NoopValidator is the singleton permissive validator.
var NoopValidator Validator[ascii.AsciiString] = noopValidator{}
