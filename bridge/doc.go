// Package bridge writes text through the OS-exposed library entry
// points, respecting each platform's calling convention.
//
// On POSIX targets one path serves every OS: the C library write symbol
// takes (descriptor, buffer, length) in the standard convention and the
// library absorbs kernel ABI differences. On Windows the write is a
// two-step sequence, GetStdHandle followed by WriteConsoleW, both linked
// through x/sys/windows which carries the platform calling convention.
//
// Every call is synchronous and blocking, resolves any handle it needs
// fresh, and holds no state between calls. Failures carry the OS error
// number and the OS-rendered description.
package bridge
