package termio

import (
	"os"
	"syscall"
)

const (
	ioctlTCFLSH = 0x540B
	tcIFlush    = 0
)

func flushInput(f *os.File) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), ioctlTCFLSH, tcIFlush) //nolint:errcheck
}
