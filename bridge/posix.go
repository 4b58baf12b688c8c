//go:build unix

package bridge

import (
	"golang.org/x/sys/unix"

	"github.com/wippyai/conwrite/errors"
	"github.com/wippyai/conwrite/stream"
	"github.com/wippyai/conwrite/transcoder"
)

// Write hands the text to the OS write entry point through the platform
// C library binding, arguments in the standard order (descriptor, buffer
// address, length). The library absorbs kernel-level ABI differences, so
// this one path serves Linux, macOS and the BSDs alike.
func Write(s stream.Standard, text string) (int, error) {
	if !s.Valid() {
		return 0, errors.InvalidStream(int(s))
	}

	buf, count, err := transcoder.Bytes(text)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	return writeFd(s.Fd(), s.String(), buf)
}

func writeFd(fd int, name string, p []byte) (int, error) {
	n, err := unix.Write(fd, p)
	if err != nil {
		code := 0
		if errno, ok := err.(unix.Errno); ok {
			code = int(errno)
		}
		return 0, errors.WriteFailed(name, code, err.Error(), err)
	}

	// The OS reports the count actually transferred; a short count is
	// passed through to the caller, never inflated to the request.
	return n, nil
}
