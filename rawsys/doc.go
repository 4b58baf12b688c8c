// Package rawsys issues the kernel write syscall directly, below the OS
// library layer.
//
// This is the single audited low-level binding in the module: the
// syscall number for each build target lives in a per-target constant
// file, and the trap itself goes through syscall.RawSyscall, which owns
// the argument-register loading and declares the clobbered state.
// Because no library code runs, failures at this tier carry only the raw
// errno value with no OS-rendered description.
//
// Compiled for POSIX targets only; on other targets the package does not
// build.
package rawsys
