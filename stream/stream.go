package stream

// Standard identifies one of the process standard streams.
type Standard int

const (
	Stdin Standard = iota
	Stdout
	Stderr
)

// Windows GetStdHandle lookup codes, two's-complement DWORD encodings of
// -10, -11 and -12.
const (
	winStdinCode  uint32 = 0xFFFF_FFF6
	winStdoutCode uint32 = 0xFFFF_FFF5
	winStderrCode uint32 = 0xFFFF_FFF4
)

// String returns the conventional stream name.
func (s Standard) String() string {
	switch s {
	case Stdin:
		return "stdin"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the three standard streams.
func (s Standard) Valid() bool {
	return s >= Stdin && s <= Stderr
}

// Fd returns the POSIX file descriptor for the stream. Descriptors for
// standard streams are fixed constants; no lookup is performed.
func (s Standard) Fd() int {
	return int(s)
}

// HandleCode returns the Windows GetStdHandle lookup code for the
// stream (stdout = -11 as an unsigned DWORD).
func (s Standard) HandleCode() uint32 {
	switch s {
	case Stdin:
		return winStdinCode
	case Stderr:
		return winStderrCode
	default:
		return winStdoutCode
	}
}
