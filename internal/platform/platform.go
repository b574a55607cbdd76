// Package platform holds OS-specific helpers for reading from failing media.
package platform

import (
	"fmt"
	"os"
)

// OpenSource opens path read-only for chunked recovery reads. Where the
// OS supports it the kernel is told not to cache or read ahead, so each
// retry goes back to the device.
func OpenSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if err := adviseUncached(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("fadvise %s: %w", path, err)
	}
	return f, nil
}
