package header

import "github.com/yourusername/httpwire/pkg/ascii"

// asciiString aliases ascii.AsciiString for brevity within this package.
type asciiString = ascii.AsciiString
