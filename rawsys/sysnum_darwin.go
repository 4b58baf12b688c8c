//go:build darwin

package rawsys

// Darwin write syscall number, tagged with the BSD syscall class in the
// high bits (class 2 << 24 | 4).
const sysWrite uintptr = 0x2000004
