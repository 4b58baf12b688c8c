package conwrite

import (
	"errors"
	"runtime"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	cwerrors "github.com/wippyai/conwrite/errors"
	"github.com/wippyai/conwrite/stream"
)

// skipIfNoConsole skips write tests on Windows when the stream is
// redirected; WriteConsoleW requires a real console.
func skipIfNoConsole(t *testing.T, s stream.Standard) {
	t.Helper()
	if runtime.GOOS == "windows" && !s.IsTerminal() {
		t.Skipf("%s is not a console on this runner", s)
	}
}

func TestWriteStdout_Empty(t *testing.T) {
	n, err := WriteStdout("")
	if err != nil {
		t.Fatalf("empty write failed: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0", n)
	}
}

func TestWriteStdout_ASCII(t *testing.T) {
	skipIfNoConsole(t, stream.Stdout)

	n, err := WriteStdout("Hi\n")
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
}

func TestWriteStderr(t *testing.T) {
	skipIfNoConsole(t, stream.Stderr)

	n, err := WriteStderr("stderr check\n")
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if n != len("stderr check\n") {
		t.Errorf("n = %d, want %d", n, len("stderr check\n"))
	}
}

func TestWrite_InvalidStream(t *testing.T) {
	_, err := Write(stream.Standard(99), "x")
	if err == nil {
		t.Fatal("expected error for invalid stream")
	}
	var cwerr *cwerrors.Error
	if !errors.As(err, &cwerr) || cwerr.Kind != cwerrors.KindInvalidStream {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWrite_Logging(t *testing.T) {
	skipIfNoConsole(t, stream.Stdout)

	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	if _, err := WriteStdout("logged\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	entries := logs.FilterMessage("write complete").All()
	if len(entries) != 1 {
		t.Fatalf("got %d 'write complete' entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["stream"] != "stdout" {
		t.Errorf("stream field = %v", fields["stream"])
	}
	if fields["units"] != int64(len("logged\n")) {
		t.Errorf("units field = %v", fields["units"])
	}
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger returned nil")
	}
}
