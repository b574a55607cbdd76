//go:build !unix

package platform

// IsMediaError always reports false where errno values are unavailable.
func IsMediaError(_ error) bool { return false }
