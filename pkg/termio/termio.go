// Package termio inspects and tidies the process terminal.
package termio

import (
	"os"
	"time"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// IsPiped reports whether f is a pipe or regular file rather than a
// character device, i.e. whether input was redirected into the process.
func IsPiped(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// DiscardPendingInput drops keystrokes typed while the program was busy so
// they are not consumed by the next interactive prompt. It is a no-op when
// stdin is not a terminal.
func DiscardPendingInput() {
	if !IsTerminal(os.Stdin) {
		return
	}

	flushInput(os.Stdin)

	// let the terminal settle before reading what is left
	time.Sleep(10 * time.Millisecond)

	drainInput(os.Stdin)
}
