//go:build windows

package input

import (
	"fmt"
	"syscall"
	"unsafe"
)

// Windows implementation of key injection using SendInput

var (
	user32        = syscall.NewLazyDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const inputKeyboard = 1

// keybdInput mirrors the Win32 KEYBDINPUT structure. Time and ExtraInfo
// stay zero; the OS fills in its own timestamp.
type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// keyInput mirrors the Win32 INPUT structure for a keyboard event. The
// trailing padding widens the union member to the size of MOUSEINPUT so
// that unsafe.Sizeof matches what SendInput expects.
type keyInput struct {
	Type uint32
	Ki   keybdInput
	_    [8]byte
}

// SystemInjector injects key events through the Win32 SendInput API.
type SystemInjector struct{}

// NewSystemInjector creates an injector backed by user32 SendInput.
func NewSystemInjector() *SystemInjector {
	return &SystemInjector{}
}

// InjectKeyEvent submits exactly one keyboard input record. The returned
// count is the number of events the OS actually inserted into the input
// stream; 0 means another process blocked the injection.
func (i *SystemInjector) InjectKeyEvent(vk uint16, flags uint32) (uint32, error) {
	var in keyInput
	in.Type = inputKeyboard
	in.Ki.Vk = vk
	in.Ki.Flags = flags

	ret, _, callErr := procSendInput.Call(
		1,
		uintptr(unsafe.Pointer(&in)),
		unsafe.Sizeof(in),
	)
	if ret == 0 {
		return 0, fmt.Errorf("SendInput injected 0 of 1 events: %v", callErr)
	}
	return uint32(ret), nil
}
