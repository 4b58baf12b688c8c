//go:build linux && arm64

package rawsys

// Linux arm64 write syscall number.
const sysWrite uintptr = 64
