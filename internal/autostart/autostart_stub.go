//go:build !windows && !darwin

package autostart

import (
	"fmt"
	"runtime"
)

func enablePlatform() error {
	return fmt.Errorf("auto-start not supported on %s", runtime.GOOS)
}

func disablePlatform() error {
	return fmt.Errorf("auto-start not supported on %s", runtime.GOOS)
}

func isEnabledPlatform() bool {
	return false
}
