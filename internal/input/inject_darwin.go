//go:build darwin

package input

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdbool.h>

int injectKey(CGKeyCode keyCode, bool keyUp) {
    CGEventRef event = CGEventCreateKeyboardEvent(NULL, keyCode, !keyUp);
    if (event == NULL) {
        return 0;
    }
    CGEventPost(kCGHIDEventTap, event);
    CFRelease(event);
    return 1;
}
*/
import "C"

import (
	"fmt"
)

// macOS implementation of key injection using CoreGraphics

// Windows VK code to macOS CGKeyCode mapping for the supported toggle keys.
// macOS has no Num Lock or Scroll Lock; Apple maps them to Keypad Clear and
// F14 respectively, which is what external PC keyboards produce.
var windowsToMacKeyMap = map[uint16]uint16{
	VKShift:      0x38, // kVK_Shift
	VKControl:    0x3B, // kVK_Control
	VKCapsLock:   0x39, // kVK_CapsLock
	VKNumLock:    0x47, // kVK_ANSI_KeypadClear
	VKScrollLock: 0x6B, // kVK_F14
	VKF13:        0x69, // kVK_F13
	VKF14:        0x6B, // kVK_F14
	VKF15:        0x71, // kVK_F15
}

// SystemInjector injects key events through a CGEventPost to the HID tap.
type SystemInjector struct{}

// NewSystemInjector creates an injector backed by CoreGraphics events.
func NewSystemInjector() *SystemInjector {
	return &SystemInjector{}
}

// InjectKeyEvent submits one keyboard event. CGEventPost reports nothing
// back, so a successfully posted event counts as 1. The extended-key flag
// has no CoreGraphics equivalent and is ignored.
func (i *SystemInjector) InjectKeyEvent(vk uint16, flags uint32) (uint32, error) {
	macKeyCode, ok := windowsToMacKeyMap[vk]
	if !ok {
		return 0, fmt.Errorf("virtual key 0x%02X has no macOS key code", vk)
	}

	keyUp := C.bool(flags&FlagKeyUp != 0)
	if C.injectKey(C.CGKeyCode(macKeyCode), keyUp) == 0 {
		return 0, fmt.Errorf("failed to create keyboard event for key 0x%02X", vk)
	}
	return 1, nil
}
