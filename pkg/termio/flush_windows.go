//go:build windows

package termio

import (
	"os"
	"syscall"
)

var procFlushConsoleInputBuffer = syscall.NewLazyDLL("kernel32.dll").NewProc("FlushConsoleInputBuffer")

func flushInput(f *os.File) {
	procFlushConsoleInputBuffer.Call(f.Fd()) //nolint:errcheck
}

// the console buffer is already empty after FlushConsoleInputBuffer
func drainInput(*os.File) {}
