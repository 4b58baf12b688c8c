//go:build linux || darwin

package rawsys

import (
	"syscall"
	"unsafe"

	"github.com/wippyai/conwrite/errors"
	"github.com/wippyai/conwrite/stream"
)

// Write issues the kernel write request for the stream directly via the
// trap instruction, bypassing the OS library. The stream descriptor is a
// compile-time constant; no handle lookup is performed.
func Write(s stream.Standard, p []byte) (int, error) {
	if !s.Valid() {
		return 0, errors.InvalidStream(int(s))
	}
	return write(uintptr(s.Fd()), s.String(), p)
}

// write traps into the kernel with the platform write syscall number.
// Register loading and the clobber contract are owned by RawSyscall; this
// function is the module's only entry into raw machine state. This tier
// sits below the OS error-description facility, so failures carry only
// the numeric errno.
func write(fd uintptr, name string, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	r1, _, errno := syscall.RawSyscall(sysWrite, fd, uintptr(unsafe.Pointer(&p[0])), uintptr(len(p)))
	if errno != 0 {
		return 0, errors.New(errors.PhaseWrite, errors.KindWriteFailed).
			Stream(name).
			Code(int(errno)).
			Build()
	}

	return int(r1), nil
}
