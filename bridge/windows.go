//go:build windows

package bridge

import (
	"golang.org/x/sys/windows"

	"github.com/wippyai/conwrite/errors"
	"github.com/wippyai/conwrite/stream"
	"github.com/wippyai/conwrite/transcoder"
)

// winConsole binds consoleAPI to kernel32 through x/sys/windows, which
// carries the stdcall calling convention for us.
type winConsole struct{}

func (winConsole) StdHandle(code uint32) (uintptr, error) {
	h, err := windows.GetStdHandle(code)
	return uintptr(h), err
}

func (winConsole) WriteConsole(h uintptr, units []uint16) (uint32, error) {
	var written uint32
	err := windows.WriteConsole(windows.Handle(h), &units[0], uint32(len(units)), &written, nil)
	return written, err
}

// Write resolves the stream handle and writes the text to the console as
// UTF-16 code units. The handle is looked up fresh on every call; the
// returned count is in 16-bit units.
func Write(s stream.Standard, text string) (int, error) {
	if !s.Valid() {
		return 0, errors.InvalidStream(int(s))
	}

	units, count, err := transcoder.UTF16(text)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	return writeConsole(winConsole{}, s.String(), s.HandleCode(), units)
}
