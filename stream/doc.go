// Package stream models the process standard streams.
//
// A Standard value maps to the identifier each platform family uses to
// address the stream: a fixed POSIX file descriptor (0, 1, 2) or a
// Windows GetStdHandle lookup code (-10, -11, -12). Only the mapping is
// held here; the platform binding packages perform the actual calls.
package stream
