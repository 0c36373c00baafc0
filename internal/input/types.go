// Package input provides cross-platform synthetic keyboard input injection.
package input

// Action flags for an injected key event. The values follow the Windows
// KEYEVENTF_* constants; platform backends translate them as needed.
const (
	// FlagExtendedKey marks the key as a member of the extended key set.
	FlagExtendedKey uint32 = 0x0001

	// FlagKeyUp makes the event a key release instead of a key press.
	FlagKeyUp uint32 = 0x0002
)

// KeyEvent describes one synthetic keyboard input. The zero Flags value is
// a plain key press.
type KeyEvent struct {
	// VirtualKey is the Windows virtual-key code of the logical key.
	VirtualKey uint16

	// Flags is a combination of FlagExtendedKey and FlagKeyUp.
	Flags uint32
}

// IsKeyUp reports whether the event is a key release.
func (e KeyEvent) IsKeyUp() bool {
	return e.Flags&FlagKeyUp != 0
}

// IsExtended reports whether the event carries the extended-key flag.
func (e KeyEvent) IsExtended() bool {
	return e.Flags&FlagExtendedKey != 0
}

// Injector defines the single capability of submitting one synthetic key
// event to the operating system. It returns the number of events the OS
// reports as injected (0 or 1).
type Injector interface {
	InjectKeyEvent(vk uint16, flags uint32) (uint32, error)
}
