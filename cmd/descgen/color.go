package main

import (
	"os"
	"regexp"

	crdberrors "github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

func useColor(mode string) (bool, error) {
	switch mode {
	case "auto":
		return isatty(), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, crdberrors.Newf("invalid color value: %q", mode)
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	reTab = regexp.MustCompile(`(?m)^\t.+`)
	rePos = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)
)

// colorize adds ANSI color codes to the message. Positions are red and
// indented details are dimmed.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = rePos.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(red + string(b) + reset)
	})
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(dim + string(b) + reset)
	})
	return string(m)
}
