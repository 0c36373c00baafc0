// Package tray provides the system tray surface using getlantern/systray.
package tray

import (
	"log"

	"github.com/getlantern/systray"
)

// App is the set of application actions the tray menu drives.
type App interface {
	Paused() bool
	TogglePause() bool
	InjectNow()
	StartOnBoot() bool
	SetStartOnBoot(enabled bool) error
	Quit()
}

// Tray manages the system tray icon and menu
type Tray struct {
	app     App
	tooltip string
}

// New creates a new system tray bound to the application actions
func New(app App, tooltip string) *Tray {
	return &Tray{
		app:     app,
		tooltip: tooltip,
	}
}

// Run starts the tray event loop (blocks until Stop or Quit)
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Stop stops the tray
func (t *Tray) Stop() {
	systray.Quit()
}

// onReady builds the menu once systray is up
func (t *Tray) onReady() {
	systray.SetTitle("VKToggle")
	systray.SetTooltip(t.tooltip)
	systray.SetIcon(getIcon())

	pauseItem := systray.AddMenuItem(pauseTitle(t.app.Paused()), "Suspend or resume key injection")
	injectItem := systray.AddMenuItem("Inject Now", "Inject one key event immediately")
	systray.AddSeparator()
	bootItem := systray.AddMenuItem("Start on Login", "")
	if t.app.StartOnBoot() {
		bootItem.Check()
	}
	systray.AddSeparator()
	quitItem := systray.AddMenuItem("Quit", "")

	go func() {
		for {
			select {
			case <-pauseItem.ClickedCh:
				pauseItem.SetTitle(pauseTitle(t.app.TogglePause()))
			case <-injectItem.ClickedCh:
				t.app.InjectNow()
			case <-bootItem.ClickedCh:
				enable := !t.app.StartOnBoot()
				if err := t.app.SetStartOnBoot(enable); err != nil {
					log.Printf("Tray: start on login: %v", err)
					continue
				}
				if enable {
					bootItem.Check()
				} else {
					bootItem.Uncheck()
				}
			case <-quitItem.ClickedCh:
				t.app.Quit()
				systray.Quit()
				return
			}
		}
	}()
}

func (t *Tray) onExit() {}

func pauseTitle(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}

// getIcon returns a placeholder icon (valid 16x16 ICO)
func getIcon() []byte {
	// A valid 16x16 32-bit ICO file with correct size and DIB header
	icon := make([]byte, 1118)
	// ICO Header
	copy(icon[0:6], []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	// Icon Directory
	copy(icon[6:22], []byte{
		0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
		0x48, 0x04, 0x00, 0x00, // Size: 1024 (pixels) + 40 (header) + 32 (mask) = 1096 bytes
		0x16, 0x00, 0x00, 0x00, // Offset
	})
	// DIB Header
	copy(icon[22:62], []byte{
		0x28, 0x00, 0x00, 0x00, // Size
		0x10, 0x00, 0x00, 0x00, // Width
		0x20, 0x00, 0x00, 0x00, // Height (16 * 2 for icon)
		0x01, 0x00, // Planes
		0x20, 0x00, // BPP
		0x00, 0x00, 0x00, 0x00, // Compression
		0x00, 0x04, 0x00, 0x00, // Image Size
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	})
	// The rest (pixels and mask) can stay 0 for transparency
	return icon
}
