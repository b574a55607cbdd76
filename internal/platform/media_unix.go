//go:build unix

package platform

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsMediaError reports whether err came from the device rather than from
// the program, e.g. an unreadable sector.
func IsMediaError(err error) bool {
	if err == nil {
		return false
	}
	for _, errno := range []unix.Errno{unix.EIO, unix.ENXIO, unix.ENODEV, unix.ETIMEDOUT} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
