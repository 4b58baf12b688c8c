//go:build !linux && !darwin

package main

import (
	"fmt"

	"github.com/wippyai/conwrite/stream"
)

func rawWrite(_ stream.Standard, _ string) (int, error) {
	return 0, fmt.Errorf("raw tier is not available on this platform; use the bridge tier")
}
