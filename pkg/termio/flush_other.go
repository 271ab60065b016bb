//go:build !linux && !windows

package termio

import "os"

// flushInput has no portable ioctl here; drainInput does the work.
func flushInput(*os.File) {}
