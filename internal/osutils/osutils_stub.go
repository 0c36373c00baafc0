//go:build !windows && !darwin

package osutils

// IsAdmin is a stub for unsupported platforms
func IsAdmin() bool {
	return false
}

// AccessibilityTrusted is a stub for unsupported platforms
func AccessibilityTrusted() bool {
	return true
}
