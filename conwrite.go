package conwrite

import (
	"go.uber.org/zap"

	"github.com/wippyai/conwrite/bridge"
	"github.com/wippyai/conwrite/stream"
)

// Write sends text to the given standard stream through the OS library
// binding compiled in for the build target. It returns the count of
// units actually written: bytes on POSIX targets, UTF-16 code units on
// Windows. A short count is reported as such, never inflated.
func Write(s stream.Standard, text string) (int, error) {
	n, err := bridge.Write(s, text)
	if err != nil {
		Logger().Debug("write failed",
			zap.String("stream", s.String()),
			zap.Error(err),
		)
		return n, err
	}

	Logger().Debug("write complete",
		zap.String("stream", s.String()),
		zap.Int("units", n),
	)
	return n, nil
}

// WriteStdout writes text to standard output.
func WriteStdout(text string) (int, error) {
	return Write(stream.Stdout, text)
}

// WriteStderr writes text to standard error.
func WriteStderr(text string) (int, error) {
	return Write(stream.Stderr, text)
}
