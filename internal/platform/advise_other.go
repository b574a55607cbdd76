//go:build !linux

package platform

import "os"

// adviseUncached is a no-op on non-Linux platforms (fadvise is Linux-only).
func adviseUncached(_ *os.File) error { return nil }
