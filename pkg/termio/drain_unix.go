//go:build !windows

package termio

import (
	"os"
	"syscall"
	"time"
)

func drainInput(f *os.File) {
	fd := int(f.Fd())

	if err := syscall.SetNonblock(fd, true); err != nil {
		return
	}
	defer syscall.SetNonblock(fd, false) //nolint:errcheck

	buf := make([]byte, 1024)
	for i := 0; i < 10; i++ {
		n, err := syscall.Read(fd, buf)
		if err != nil || n == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}
