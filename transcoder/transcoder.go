package transcoder

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wippyai/conwrite/errors"
)

// Bytes normalizes text for a byte-oriented OS interface (the POSIX
// write path). The UTF-8 encoding passes through unchanged; the returned
// count is the byte count. Text is validated before it crosses the ABI
// boundary.
func Bytes(text string) ([]byte, int, error) {
	if !utf8.ValidString(text) {
		return nil, 0, errors.InvalidUTF8([]byte(text))
	}
	if len(text) == 0 {
		return nil, 0, nil
	}
	buf := []byte(text)
	return buf, len(buf), nil
}

// UTF16 normalizes text for a UTF-16 OS interface (the Windows console
// path). Each Unicode scalar value becomes one 16-bit code unit, or a
// surrogate pair for scalar values above the Basic Multilingual Plane.
// The returned count is in 16-bit units, not bytes; the Windows console
// API counts units. The returned slice must stay live for the duration
// of the call that receives its address.
func UTF16(text string) ([]uint16, int, error) {
	if !utf8.ValidString(text) {
		return nil, 0, errors.InvalidUTF8([]byte(text))
	}
	if len(text) == 0 {
		return nil, 0, nil
	}
	units := utf16.Encode([]rune(text))
	return units, len(units), nil
}
