//go:build linux || darwin

package main

import (
	"github.com/wippyai/conwrite/rawsys"
	"github.com/wippyai/conwrite/stream"
	"github.com/wippyai/conwrite/transcoder"
)

func rawWrite(s stream.Standard, text string) (int, error) {
	buf, _, err := transcoder.Bytes(text)
	if err != nil {
		return 0, err
	}
	return rawsys.Write(s, buf)
}
