// Package display decides where rendered diagrams and plots go: printed
// into the transcript, or shown full-screen until dismissed.
package display

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Mode selects the display surface.
type Mode string

const (
	// ModeInline prints diagrams into the transcript.
	ModeInline Mode = "inline"

	// ModeWindow shows each diagram full-screen and waits for the user to
	// close it before the program continues.
	ModeWindow Mode = "window"

	// ModeAuto resolves to ModeWindow on an interactive terminal and to
	// ModeInline otherwise.
	ModeAuto Mode = "auto"
)

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeInline, ModeWindow, ModeAuto:
		return m, nil
	case "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("invalid display mode %q: must be inline, window or auto", s)
	}
}

// Resolve turns ModeAuto into a concrete mode. interactive reports whether
// both stdin and stdout are terminals.
func Resolve(m Mode, interactive bool) Mode {
	if m != ModeAuto {
		return m
	}
	if interactive {
		return ModeWindow
	}
	return ModeInline
}

// Interactive reports whether stdin and stdout are both attached to a
// terminal.
func Interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
