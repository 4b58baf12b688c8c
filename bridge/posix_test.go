//go:build unix

package bridge

import (
	"errors"
	"os"
	"testing"

	cwerrors "github.com/wippyai/conwrite/errors"
	"github.com/wippyai/conwrite/stream"
)

func TestWriteFd_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	n, werr := writeFd(int(w.Fd()), "stdout", []byte("Hi\n"))
	if werr != nil {
		t.Fatalf("writeFd failed: %v", werr)
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}

	buf := make([]byte, 8)
	rn, err := r.Read(buf)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(buf[:rn]) != "Hi\n" {
		t.Errorf("read back %q", buf[:rn])
	}
}

func TestWriteFd_ASCIIByteCount(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	for _, text := range []string{"a", "hello world", "line one\nline two\n"} {
		n, werr := writeFd(int(w.Fd()), "stdout", []byte(text))
		if werr != nil {
			t.Fatalf("writeFd(%q) failed: %v", text, werr)
		}
		if n != len(text) {
			t.Errorf("writeFd(%q): n = %d, want %d", text, n, len(text))
		}
		buf := make([]byte, len(text))
		if _, err := r.Read(buf); err != nil {
			t.Fatalf("drain pipe: %v", err)
		}
	}
}

func TestWriteFd_BadDescriptor(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	r.Close()
	fd := int(w.Fd())
	w.Close()

	_, werr := writeFd(fd, "stdout", []byte("x"))
	if werr == nil {
		t.Fatal("expected error on closed descriptor")
	}
	var cwerr *cwerrors.Error
	if !errors.As(werr, &cwerr) {
		t.Fatalf("unexpected error type: %v", werr)
	}
	if cwerr.Kind != cwerrors.KindWriteFailed {
		t.Errorf("kind = %s, want write_failed", cwerr.Kind)
	}
	if cwerr.Code == 0 {
		t.Error("expected a nonzero OS error code")
	}
	if cwerr.OSMessage == "" {
		t.Error("bridge tier should attach the OS description")
	}
}

func TestWrite_Empty(t *testing.T) {
	n, err := Write(stream.Stdout, "")
	if err != nil {
		t.Fatalf("empty write failed: %v", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0", n)
	}
}

func TestWrite_InvalidStream(t *testing.T) {
	_, err := Write(stream.Standard(-3), "x")
	var cwerr *cwerrors.Error
	if !errors.As(err, &cwerr) || cwerr.Kind != cwerrors.KindInvalidStream {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWrite_InvalidUTF8(t *testing.T) {
	_, err := Write(stream.Stdout, string([]byte{0xFF}))
	var cwerr *cwerrors.Error
	if !errors.As(err, &cwerr) || cwerr.Kind != cwerrors.KindInvalidUTF8 {
		t.Errorf("unexpected error: %v", err)
	}
}
