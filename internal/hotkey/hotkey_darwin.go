//go:build darwin

package hotkey

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework ApplicationServices
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdint.h>

// Forward declaration of the callback
CGEventRef keyEventCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *refcon);

// Helper to start the loop - takes uintptr_t to avoid Go unsafe.Pointer conversion
static inline void startKeyEventTap(uintptr_t refcon) {
    CGEventMask mask = CGEventMaskBit(kCGEventKeyDown) |
                       CGEventMaskBit(kCGEventKeyUp) |
                       CGEventMaskBit(kCGEventFlagsChanged);
    CFMachPortRef tap = CGEventTapCreate(
        kCGSessionEventTap,
        kCGHeadInsertEventTap,
        kCGEventTapOptionListenOnly,
        mask,
        keyEventCallback,
        (void*)refcon
    );

    if (!tap) {
        printf("Hotkey Engine: ERROR! Failed to create CGEventTap. Accessibility permissions missing?\n");
        return;
    }

    CFRunLoopSourceRef source = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
    CFRunLoopAddSource(CFRunLoopGetCurrent(), source, kCFRunLoopCommonModes);
    CGEventTapEnable(tap, true);
    CFRunLoopRun();
}
*/
import "C"
import (
	"log"
	"runtime/cgo"
	"unsafe"
)

//export keyEventCallback
func keyEventCallback(proxy C.CGEventTapProxy, eventType C.CGEventType, event C.CGEventRef, refcon unsafe.Pointer) C.CGEventRef {
	h := cgo.Handle(uintptr(refcon))
	m := h.Value().(*Manager)

	switch eventType {
	case C.kCGEventKeyDown, C.kCGEventKeyUp:
		isDown := eventType == C.kCGEventKeyDown
		keyCode := uint16(C.CGEventGetIntegerValueField(event, C.kCGKeyboardEventKeycode))
		keyName := macKeyCodeToName(keyCode)
		if keyName != "" {
			m.UpdateState(keyName, isDown)
		}

	case C.kCGEventFlagsChanged:
		// Modifier state changes arrive as flag events, not key events
		flags := C.CGEventGetFlags(event)
		keyCode := uint16(C.CGEventGetIntegerValueField(event, C.kCGKeyboardEventKeycode))

		switch keyCode {
		case 55, 54: // Command keys
			m.UpdateState("CMD", (flags&C.kCGEventFlagMaskCommand) != 0)
		case 56, 60: // Shift keys
			m.UpdateState("SHIFT", (flags&C.kCGEventFlagMaskShift) != 0)
		case 58, 61: // Alt/Option keys
			m.UpdateState("ALT", (flags&C.kCGEventFlagMaskAlternate) != 0)
		case 59, 62: // Control keys
			m.UpdateState("CTRL", (flags&C.kCGEventFlagMaskControl) != 0)
		}
	}

	return event
}

func (m *Manager) startPlatform() error {
	handle := cgo.NewHandle(m)
	go func() {
		log.Println("Hotkey Engine: macOS CGEventTap started.")
		C.startKeyEventTap(C.uintptr_t(handle))
	}()
	return nil
}

func macKeyCodeToName(code uint16) string {
	switch code {
	case 55, 54:
		return "CMD"
	case 56, 60:
		return "SHIFT"
	case 58, 61:
		return "ALT"
	case 59, 62:
		return "CTRL"
	case 49:
		return "SPACE"
	case 36:
		return "ENTER"
	case 53:
		return "ESC"
	}

	// Letters and digits, by ANSI key code
	letters := map[uint16]string{
		0: "A", 11: "B", 8: "C", 2: "D", 14: "E", 3: "F", 5: "G", 4: "H",
		34: "I", 38: "J", 40: "K", 37: "L", 46: "M", 45: "N", 31: "O",
		35: "P", 12: "Q", 15: "R", 1: "S", 17: "T", 32: "U", 9: "V",
		13: "W", 7: "X", 16: "Y", 6: "Z",
		29: "0", 18: "1", 19: "2", 20: "3", 21: "4", 23: "5", 22: "6",
		26: "7", 28: "8", 25: "9",
	}
	if name, ok := letters[code]; ok {
		return name
	}

	// Function keys
	fkeys := map[uint16]string{
		122: "F1", 120: "F2", 99: "F3", 118: "F4", 96: "F5", 97: "F6",
		98: "F7", 100: "F8", 101: "F9", 109: "F10", 103: "F11", 111: "F12",
	}
	if name, ok := fkeys[code]; ok {
		return name
	}

	return ""
}
