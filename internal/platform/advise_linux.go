//go:build linux

package platform

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// adviseUncached drops cached pages for f and disables readahead. ESPIPE
// and EINVAL (pipes, some character devices) are ignored.
//
//nolint:gosec // G115: fd values are small non-negative integers
func adviseUncached(f *os.File) error {
	fd := int(f.Fd())
	for _, advice := range []int{unix.FADV_RANDOM, unix.FADV_DONTNEED} {
		err := unix.Fadvise(fd, 0, 0, advice)
		if err != nil && !errors.Is(err, unix.ESPIPE) && !errors.Is(err, unix.EINVAL) {
			return err
		}
	}
	return nil
}
