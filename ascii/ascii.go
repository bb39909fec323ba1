// Package ascii provides strings that are guaranteed to contain only
// 7-bit ASCII bytes.
package ascii

import "fmt"

// String holds only bytes in the range 0x00..0x7F.
// The zero value is the empty string and is valid.
type String string

// InvalidByteError reports the first non-ASCII byte found during
// conversion and its byte offset in the input.
type InvalidByteError struct {
	Byte byte
	Pos  int
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("invalid ascii byte 0x%02x at offset %d", e.Byte, e.Pos)
}

// FromString converts s, verifying every byte is ASCII.
func FromString(s string) (String, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return "", &InvalidByteError{Byte: s[i], Pos: i}
		}
	}
	return String(s), nil
}

// FromBytes converts b, verifying every byte is ASCII.
// The result does not alias b.
func FromBytes(b []byte) (String, error) {
	for i := 0; i < len(b); i++ {
		if b[i] >= 0x80 {
			return "", &InvalidByteError{Byte: b[i], Pos: i}
		}
	}
	return String(b), nil
}

// Valid reports whether s contains only ASCII bytes.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// ValidBytes reports whether b contains only ASCII bytes.
func ValidBytes(b []byte) bool {
	for i := 0; i < len(b); i++ {
		if b[i] >= 0x80 {
			return false
		}
	}
	return true
}

func (s String) String() string {
	return string(s)
}

// Bytes returns a copy of s as a byte slice.
func (s String) Bytes() []byte {
	return []byte(s)
}
