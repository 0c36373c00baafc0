//go:build !windows && !darwin

package input

import (
	"fmt"
)

// Stub implementation for platforms without an injection backend

// SystemInjector is a stub key injector.
type SystemInjector struct{}

// NewSystemInjector creates a new stub injector.
func NewSystemInjector() *SystemInjector {
	return &SystemInjector{}
}

// InjectKeyEvent always fails on unsupported platforms.
func (i *SystemInjector) InjectKeyEvent(vk uint16, flags uint32) (uint32, error) {
	return 0, fmt.Errorf("input injection not supported on this platform")
}
