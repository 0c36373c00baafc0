package input

import (
	"fmt"
	"sort"
	"strings"
)

// Windows virtual-key codes for the keys this tool knows how to toggle.
// Reference: https://docs.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
const (
	VKShift      uint16 = 0x10
	VKControl    uint16 = 0x11
	VKCapsLock   uint16 = 0x14
	VKNumLock    uint16 = 0x90
	VKScrollLock uint16 = 0x91
	VKF13        uint16 = 0x7C
	VKF14        uint16 = 0x7D
	VKF15        uint16 = 0x7E
)

// keyNames maps human-readable key names to virtual-key codes. F13-F15 are
// included because they are unmapped on most keyboards and make good
// "invisible" toggle targets.
var keyNames = map[string]uint16{
	"shift":      VKShift,
	"ctrl":       VKControl,
	"capslock":   VKCapsLock,
	"numlock":    VKNumLock,
	"scrolllock": VKScrollLock,
	"f13":        VKF13,
	"f14":        VKF14,
	"f15":        VKF15,
}

// KeyCode resolves a key name (case-insensitive) to its virtual-key code.
func KeyCode(name string) (uint16, error) {
	vk, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key name %q (see -list-keys)", name)
	}
	return vk, nil
}

// KeyName returns the name for a virtual-key code, or "" if unknown.
func KeyName(vk uint16) string {
	for name, code := range keyNames {
		if code == vk {
			return name
		}
	}
	return ""
}

// KeyNames returns all supported key names in sorted order.
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
