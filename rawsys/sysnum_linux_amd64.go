//go:build linux && amd64

package rawsys

// Linux x86-64 write syscall number.
const sysWrite uintptr = 1
