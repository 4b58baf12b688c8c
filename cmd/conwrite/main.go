package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/conwrite"
	"github.com/wippyai/conwrite/stream"
)

func main() {
	var (
		text        = flag.String("text", "Hi\n", "Text to write")
		streamName  = flag.String("stream", "stdout", "Target stream (stdout or stderr)")
		tier        = flag.String("tier", "bridge", "Binding tier (bridge or raw)")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*text, *streamName, *tier, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(text, streamName, tier string, verbose bool) error {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		conwrite.SetLogger(logger)
		defer logger.Sync()
	}

	s, err := parseStream(streamName)
	if err != nil {
		return err
	}

	if !s.IsTerminal() {
		fmt.Fprintf(os.Stderr, "note: %s is redirected, not a terminal\n", s)
	}

	var n int
	switch tier {
	case "bridge":
		n, err = conwrite.Write(s, text)
	case "raw":
		n, err = rawWrite(s, text)
	default:
		return fmt.Errorf("unknown tier %q (want bridge or raw)", tier)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %d units to %s via %s tier\n", n, s, tier)
	return nil
}

func parseStream(name string) (stream.Standard, error) {
	switch name {
	case "stdout":
		return stream.Stdout, nil
	case "stderr":
		return stream.Stderr, nil
	default:
		return 0, fmt.Errorf("unknown stream %q (want stdout or stderr)", name)
	}
}
