package bridge

import (
	stderrors "errors"
	"syscall"

	"github.com/wippyai/conwrite/errors"
)

// invalidHandle is the Windows INVALID_HANDLE_VALUE sentinel.
const invalidHandle = ^uintptr(0)

// consoleAPI is the pair of console entry points the Windows write
// sequence uses. The real kernel32 binding lives behind the windows
// build tag; tests substitute a fake.
type consoleAPI interface {
	// StdHandle resolves the handle for a GetStdHandle lookup code.
	StdHandle(code uint32) (uintptr, error)
	// WriteConsole writes UTF-16 units to the handle and reports how
	// many units the console accepted.
	WriteConsole(h uintptr, units []uint16) (uint32, error)
}

// writeConsole runs the two-step console write: resolve the stream
// handle, then write the UTF-16 units. The handle is resolved fresh on
// every call and never outlives it; the OS documents the lookup as cheap
// to repeat. A sentinel handle fails the call before any write is
// attempted.
func writeConsole(api consoleAPI, name string, code uint32, units []uint16) (int, error) {
	h, err := api.StdHandle(code)
	if err != nil || h == invalidHandle {
		return 0, errors.InvalidHandle(name, osCode(err))
	}

	if len(units) == 0 {
		return 0, nil
	}

	written, err := api.WriteConsole(h, units)
	if err != nil {
		return 0, errors.WriteFailed(name, osCode(err), err.Error(), err)
	}
	if int(written) != len(units) {
		return int(written), errors.ShortWrite(name, len(units), int(written))
	}

	return int(written), nil
}

func osCode(err error) int {
	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return int(errno)
	}
	return 0
}
