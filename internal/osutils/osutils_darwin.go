//go:build darwin

package osutils

/*
#cgo LDFLAGS: -framework ApplicationServices

#include <ApplicationServices/ApplicationServices.h>
#include <stdbool.h>

bool accessibilityTrusted() {
    return AXIsProcessTrusted();
}
*/
import "C"

// IsAdmin is a stub for non-Windows platforms
func IsAdmin() bool {
	return false
}

// AccessibilityTrusted reports whether the process holds the macOS
// Accessibility permission. Without it CGEventPost posts events that the
// window server discards.
func AccessibilityTrusted() bool {
	return bool(C.accessibilityTrusted())
}
