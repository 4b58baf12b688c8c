// Package transcoder normalizes caller text into the representation the
// target OS interface expects.
//
// POSIX interfaces take the UTF-8 byte encoding unchanged and count
// bytes. The Windows console API takes UTF-16 and counts 16-bit code
// units. Both paths validate UTF-8 before the buffer crosses the ABI
// boundary; the recorded count always matches the produced buffer
// exactly, with no silent truncation.
package transcoder
