package stream

import (
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

var (
	stdinIsTerminal  int32 = -1 // -1 = unchecked, 0 = no, 1 = yes
	stdoutIsTerminal int32 = -1
	stderrIsTerminal int32 = -1
)

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}

// osFile returns the os package file for the stream. Its Fd() is what
// terminal detection needs: on Windows that is the real console handle,
// not the POSIX descriptor constant.
func (s Standard) osFile() *os.File {
	switch s {
	case Stdin:
		return os.Stdin
	case Stdout:
		return os.Stdout
	case Stderr:
		return os.Stderr
	default:
		return nil
	}
}

// IsTerminal reports whether the stream is attached to a terminal.
// The answer is cached after the first check; whether a standard stream
// is redirected cannot change within one process lifetime.
func (s Standard) IsTerminal() bool {
	f := s.osFile()
	if f == nil {
		return false
	}
	switch s {
	case Stdin:
		return isTerminal(int(f.Fd()), &stdinIsTerminal)
	case Stdout:
		return isTerminal(int(f.Fd()), &stdoutIsTerminal)
	default:
		return isTerminal(int(f.Fd()), &stderrIsTerminal)
	}
}
