// Package conwrite writes Unicode text to the process standard streams,
// selecting the OS binding at build time.
//
// The library is organized into small packages with distinct
// responsibilities:
//
//	conwrite/            Root package with the public write surface
//	├── stream/          Standard stream model: POSIX descriptors and
//	│                    Windows handle lookup codes
//	├── transcoder/      Text normalization: UTF-8 bytes for POSIX,
//	│                    UTF-16 code units for the Windows console
//	├── bridge/          OS library bindings: write(2) on POSIX,
//	│                    GetStdHandle + WriteConsoleW on Windows
//	├── rawsys/          Direct kernel syscall tier (POSIX only)
//	└── errors/          Structured error types carrying OS error codes
//
// # Quick Start
//
//	n, err := conwrite.WriteStdout("Hi\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The count returned is in the units the target OS counts: bytes on
// POSIX, UTF-16 code units on Windows.
//
// # Platform selection
//
// Exactly one binding path is compiled into an artifact, chosen by build
// tags. A target with no binding fails at build time; there is no
// runtime platform branch and no fallback.
//
// # Concurrency
//
// Every write is synchronous and blocking, with no internal locking or
// caching. Interleaving of concurrent writes on the same stream is
// delegated to the OS.
package conwrite
